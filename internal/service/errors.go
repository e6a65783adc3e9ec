package service

import "errors"

// Common service-level errors
var (
	// ErrAlreadyOnboarded indicates the user already has a profile;
	// onboarding happens at most once.
	ErrAlreadyOnboarded = errors.New("user has already onboarded")

	// ErrNotOnboarded indicates an operation that requires a profile was
	// attempted before onboarding.
	ErrNotOnboarded = errors.New("user has not onboarded")

	// ErrDuplicateCheckIn indicates a check-in already exists for the day.
	ErrDuplicateCheckIn = errors.New("check-in already recorded for this day")

	// ErrEmailTaken indicates the registration email is already in use.
	ErrEmailTaken = errors.New("email address is already registered")
)
