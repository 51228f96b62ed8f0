package openhours

import (
	"encoding/json"
)

// Interval is one open window. Start after End means the window runs past
// midnight. The stored pair 0/0 marks a day closed all day.
type Interval struct {
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

func (iv Interval) SpansMidnight() bool {
	return iv.Start > iv.End
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// WeeklySchedule maps each day to at most one Interval. Absent days are
// closed. It is a value: copies never share state.
type WeeklySchedule struct {
	hours [daysInWeek]Interval
	set   [daysInWeek]bool
}

// NewWeeklySchedule builds a schedule from a day map, ignoring invalid days.
func NewWeeklySchedule(m map[Day]Interval) WeeklySchedule {
	var s WeeklySchedule
	for d, iv := range m {
		s = s.with(d, iv)
	}
	return s
}

func (s WeeklySchedule) with(d Day, iv Interval) WeeklySchedule {
	if d.Valid() {
		s.hours[d] = iv
		s.set[d] = true
	}
	return s
}

// On returns the interval recorded for d.
func (s WeeklySchedule) On(d Day) (Interval, bool) {
	if !d.Valid() || !s.set[d] {
		return Interval{}, false
	}
	return s.hours[d], true
}

func (s WeeklySchedule) Len() int {
	n := 0
	for _, ok := range s.set {
		if ok {
			n++
		}
	}
	return n
}

// Rows lists the recorded days Monday first.
func (s WeeklySchedule) Rows() []Row {
	rows := make([]Row, 0, daysInWeek)
	for _, d := range Days() {
		if iv, ok := s.On(d); ok {
			rows = append(rows, Row{Day: d, Interval: iv})
		}
	}
	return rows
}

func (s WeeklySchedule) Map() map[Day]Interval {
	m := make(map[Day]Interval, daysInWeek)
	for _, r := range s.Rows() {
		m[r.Day] = r.Interval
	}
	return m
}

func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]Interval, daysInWeek)
	for _, r := range s.Rows() {
		out[r.Day.String()] = r.Interval
	}
	return json.Marshal(out)
}

func (s *WeeklySchedule) UnmarshalJSON(b []byte) error {
	var in map[Day]Interval
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*s = NewWeeklySchedule(in)
	return nil
}

// Row is one stored interval, the shape of an open_hours record.
type Row struct {
	Day      Day
	Interval Interval
}

// Restaurant owns exactly one schedule. ID is zero until the relational
// store assigns one.
type Restaurant struct {
	ID       uint           `json:"id,omitempty"`
	Name     string         `json:"name"`
	Schedule WeeklySchedule `json:"open_hours"`
}
