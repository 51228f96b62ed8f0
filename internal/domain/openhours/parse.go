package openhours

import (
	"fmt"
	"strings"
)

const (
	groupSep    = ";"
	daysSep     = "|"
	daySep      = ","
	intervalSep = "-"
)

// ParseSchedule reads text such as
//
//	Mon,Tue,Wed,Thu,Sun|11:00-22:00;Fri,Sat|11:00-0:00
//
// Unknown day tokens are skipped. A later group overwrites an earlier one
// for the same day. Any group without a readable interval, or whose start
// equals its end, fails the whole schedule. Text after the interval, such
// as a second "|" or "-", makes the end time unparsable and so fails too.
func ParseSchedule(text string) (WeeklySchedule, error) {
	var s WeeklySchedule

	for _, group := range strings.Split(text, groupSep) {
		if strings.TrimSpace(group) == "" {
			continue
		}

		days, span, ok := strings.Cut(group, daysSep)
		if !ok {
			return WeeklySchedule{}, &MalformedScheduleError{Group: group, Reason: "missing " + daysSep}
		}

		iv, err := parseInterval(span)
		if err != nil {
			return WeeklySchedule{}, &MalformedScheduleError{Group: group, Reason: err.Error()}
		}

		for _, tok := range strings.Split(days, daySep) {
			d, ok := DayFromAbbrev(strings.TrimSpace(tok))
			if !ok {
				continue
			}
			s = s.with(d, iv)
		}
	}

	return s, nil
}

func parseInterval(span string) (Interval, error) {
	startText, endText, ok := strings.Cut(span, intervalSep)
	if !ok {
		return Interval{}, fmt.Errorf("missing %s", intervalSep)
	}

	start, err := ParseClock(startText)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseClock(endText)
	if err != nil {
		return Interval{}, err
	}

	if start == end {
		return Interval{}, fmt.Errorf("start and end time are the same")
	}

	return Interval{Start: start, End: end}, nil
}

// ParseRecord builds a restaurant from a (name, schedule) record. Any
// error means the record is dropped as a whole.
func ParseRecord(fields []string) (Restaurant, error) {
	if len(fields) < 2 {
		return Restaurant{}, ErrIncompleteRecord
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return Restaurant{}, ErrIncompleteRecord
	}

	schedule, err := ParseSchedule(fields[1])
	if err != nil {
		return Restaurant{}, err
	}

	return Restaurant{Name: name, Schedule: schedule}, nil
}
