package openhours

import (
	"strings"
	"time"
)

// Day is a day of the week, Monday first.
type Day uint8

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const daysInWeek = 7

var dayNames = [daysInWeek]string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

var dayAbbrevs = [daysInWeek]string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

// Days lists the week in order.
func Days() [daysInWeek]Day {
	return [daysInWeek]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Day) Valid() bool {
	return d < daysInWeek
}

// Minus moves n days back, wrapping Monday to Sunday.
func (d Day) Minus(n int) Day {
	return d.Plus(-n)
}

// Plus moves n days forward, wrapping Sunday to Monday.
func (d Day) Plus(n int) Day {
	v := (int(d) + n) % daysInWeek
	if v < 0 {
		v += daysInWeek
	}
	return Day(v)
}

// String returns the upper case name stored in open_hours.day_of_week.
func (d Day) String() string {
	if !d.Valid() {
		return "INVALID"
	}
	return dayNames[d]
}

func (d Day) Abbrev() string {
	if !d.Valid() {
		return ""
	}
	return dayAbbrevs[d]
}

// DayFromAbbrev resolves the case-sensitive three letter tokens used by
// the schedule grammar.
func DayFromAbbrev(s string) (Day, bool) {
	for i, a := range dayAbbrevs {
		if a == s {
			return Day(i), true
		}
	}
	return 0, false
}

// ParseDay accepts a full name or an abbreviation in any case.
func ParseDay(s string) (Day, bool) {
	s = strings.TrimSpace(s)
	for i := range dayNames {
		if strings.EqualFold(s, dayNames[i]) || strings.EqualFold(s, dayAbbrevs[i]) {
			return Day(i), true
		}
	}
	return 0, false
}

func DayOf(wd time.Weekday) Day {
	// time.Weekday starts on Sunday
	return Day((int(wd) + 6) % daysInWeek)
}

func (d Day) Weekday() time.Weekday {
	return time.Weekday((int(d) + 1) % daysInWeek)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	v, ok := ParseDay(string(b))
	if !ok {
		return &UnknownDayError{Token: string(b)}
	}
	*d = v
	return nil
}
