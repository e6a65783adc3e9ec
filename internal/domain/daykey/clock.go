package daykey

import (
	"fmt"
	"time"
)

// Clock abstracts the source of "now" so services can be tested against
// fixed instants.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Today resolves the current calendar day in the given IANA timezone.
// An empty timezone defaults to UTC. Returns an error for unknown zone names
// so a corrupt profile surfaces instead of silently shifting days.
func Today(clock Clock, timezone string) (Key, error) {
	loc := time.UTC
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return "", fmt.Errorf("unknown timezone %q: %w", timezone, err)
		}
	}
	return New(clock.Now(), loc), nil
}
