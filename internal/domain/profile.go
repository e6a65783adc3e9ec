package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for UserProfile.
var (
	ErrEmptyProfileUserID = errors.New("profile user ID cannot be empty")
	ErrBirthDateInFuture  = errors.New("birth date cannot be in the future")
)

// UserProfile holds a user's fixed onboarding facts and the running AgeState.
// It is created once at onboarding, read before and written after every
// daily check-in, and never deleted.
type UserProfile struct {
	UserID    uuid.UUID `json:"user_id"`
	BirthDate time.Time `json:"birth_date"`

	// Timezone is an IANA zone name; empty means UTC.
	Timezone string `json:"timezone"`

	State AgeState `json:"state"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserProfile creates the profile at onboarding time. The chronological
// age inside state must already be derived from birthDate by the caller.
func NewUserProfile(userID uuid.UUID, birthDate time.Time, timezone string, state AgeState) (*UserProfile, error) {
	now := time.Now().UTC()
	profile := &UserProfile{
		UserID:    userID,
		BirthDate: birthDate,
		Timezone:  timezone,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the UserProfile has valid data.
func (p *UserProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProfileUserID
	}
	if p.BirthDate.After(time.Now().UTC()) {
		return ErrBirthDateInFuture
	}
	if p.Timezone != "" {
		if _, err := time.LoadLocation(p.Timezone); err != nil {
			return ErrInvalidTimezone
		}
	}
	return p.State.Validate()
}

// AgeYearsAt returns the fractional chronological age at the given instant.
func AgeYearsAt(birthDate, at time.Time) float64 {
	const hoursPerYear = 24 * 365.2425
	return at.Sub(birthDate).Hours() / hoursPerYear
}
