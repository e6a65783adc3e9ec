// Package daykey provides the canonical calendar-day key used throughout the
// application. A Key is a "2006-01-02" string rendered in the user's timezone
// and is the unit of idempotency for daily check-ins: all gap and range
// arithmetic happens on calendar days, never on elapsed wall-clock time, so
// the results are stable across DST transitions.
package daykey

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the wire format for calendar-day keys.
const Layout = "2006-01-02"

// hoursPerDay is used when converting a UTC midnight difference back to days.
const hoursPerDay = 24

// ErrInvalidKey is returned when a string does not parse as a calendar-day key.
var ErrInvalidKey = errors.New("invalid day key")

// Key is a calendar day in a specific user's timezone.
// Keys with the same layout compare correctly with < and ==.
type Key string

// New derives the key for the calendar day containing t in the given location.
func New(t time.Time, loc *time.Location) Key {
	if loc == nil {
		loc = time.UTC
	}
	return Key(t.In(loc).Format(Layout))
}

// Parse validates s and returns it as a Key.
func Parse(s string) (Key, error) {
	if _, err := time.Parse(Layout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return Key(s), nil
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// Time returns the key's midnight anchored in UTC. The anchor is only used
// for calendar arithmetic; it does not represent a real instant in the
// user's timezone.
func (k Key) Time() (time.Time, error) {
	t, err := time.Parse(Layout, string(k))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, string(k))
	}
	return t, nil
}

// AddDays returns the key n calendar days after k (n may be negative).
func (k Key) AddDays(n int) (Key, error) {
	t, err := k.Time()
	if err != nil {
		return "", err
	}
	return Key(t.AddDate(0, 0, n).Format(Layout)), nil
}

// MonthKey returns the "2006-01" month bucket containing k.
func (k Key) MonthKey() string {
	if len(k) < 7 {
		return string(k)
	}
	return string(k[:7])
}

// GapDays returns the number of calendar days from one key to another.
// A positive result means "to" is after "from"; zero means the same day;
// a negative result indicates clock skew and is reported to the caller
// rather than being silently absorbed.
func GapDays(from, to Key) (int, error) {
	ft, err := from.Time()
	if err != nil {
		return 0, err
	}
	tt, err := to.Time()
	if err != nil {
		return 0, err
	}
	return int(tt.Sub(ft).Hours() / hoursPerDay), nil
}

// StartOfWeek returns the Monday of the week containing k.
func StartOfWeek(k Key) (Key, error) {
	t, err := k.Time()
	if err != nil {
		return "", err
	}
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return Key(t.AddDate(0, 0, -(weekday - 1)).Format(Layout)), nil
}

// StartOfMonth returns the first day of the month containing k.
func StartOfMonth(k Key) (Key, error) {
	t, err := k.Time()
	if err != nil {
		return "", err
	}
	return Key(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Format(Layout)), nil
}

// EndOfMonth returns the last day of the month containing k.
func EndOfMonth(k Key) (Key, error) {
	t, err := k.Time()
	if err != nil {
		return "", err
	}
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return Key(firstOfNext.AddDate(0, 0, -1).Format(Layout)), nil
}

// StartOfYear returns January 1st of the year containing k.
func StartOfYear(k Key) (Key, error) {
	t, err := k.Time()
	if err != nil {
		return "", err
	}
	return Key(time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC).Format(Layout)), nil
}

// EndOfYear returns December 31st of the year containing k.
func EndOfYear(k Key) (Key, error) {
	t, err := k.Time()
	if err != nil {
		return "", err
	}
	return Key(time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC).Format(Layout)), nil
}

// Range enumerates every calendar day from "from" to "to" inclusive.
// Returns an error if either key is malformed or "to" precedes "from".
func Range(from, to Key) ([]Key, error) {
	gap, err := GapDays(from, to)
	if err != nil {
		return nil, err
	}
	if gap < 0 {
		return nil, fmt.Errorf("%w: range end %q precedes start %q", ErrInvalidKey, to, from)
	}
	ft, err := from.Time()
	if err != nil {
		return nil, err
	}
	days := make([]Key, 0, gap+1)
	for i := 0; i <= gap; i++ {
		days = append(days, Key(ft.AddDate(0, 0, i).Format(Layout)))
	}
	return days, nil
}

// MonthsOfYear enumerates the twelve "2006-01" month buckets of the year
// containing k, in calendar order.
func MonthsOfYear(k Key) ([]string, error) {
	t, err := k.Time()
	if err != nil {
		return nil, err
	}
	months := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, time.Date(t.Year(), m, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"))
	}
	return months, nil
}
