package openhours

import (
	"fmt"
	"strings"
	"time"
)

// Clock is a time of day as minutes since midnight, 0 through 1439.
type Clock int

const (
	Midnight Clock = 0
	// EarlyMorningEnd closes the window in which the previous day's
	// interval decides whether a restaurant is open.
	EarlyMorningEnd Clock = 5 * 60
	minutesPerDay   Clock = 24 * 60
)

const clockLayout = "15:04"

// ParseClock parses a 24-hour HH:MM literal. A single digit hour is
// accepted, so "0:00" is midnight.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return ClockAt(t.Hour(), t.Minute()), nil
}

func ClockAt(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ClockOf drops seconds and below.
func ClockOf(t time.Time) Clock {
	return ClockAt(t.Hour(), t.Minute())
}

func (c Clock) Valid() bool {
	return c >= 0 && c < minutesPerDay
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	v, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
