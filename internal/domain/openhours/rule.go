package openhours

// The open-window rule is written once, as a condition over a single
// stored Row. The in-memory evaluator calls Eval; the relational backends
// render the same tree into SQL, so there is nothing to keep in sync by hand.

// Field names an interval column.
type Field uint8

const (
	FieldStart Field = iota
	FieldEnd
)

// Op compares a Field against a Clock.
type Op uint8

const (
	OpLe Op = iota
	OpGe
)

// Cond is a boolean condition over one Row. The set of implementations is
// closed: DayIs, Bound, SpansMidnight, All, Any.
type Cond interface {
	Eval(r Row) bool
	cond()
}

// DayIs holds when the row belongs to Day.
type DayIs struct {
	Day Day
}

// Bound compares a row field with a fixed time of day.
type Bound struct {
	Field Field
	Op    Op
	At    Clock
}

// SpansMidnight holds when the row's start is after its end.
type SpansMidnight struct{}

// All is a conjunction, Any a disjunction.
type (
	All []Cond
	Any []Cond
)

func (c DayIs) Eval(r Row) bool { return r.Day == c.Day }

func (c Bound) Eval(r Row) bool {
	v := r.Interval.Start
	if c.Field == FieldEnd {
		v = r.Interval.End
	}
	switch c.Op {
	case OpLe:
		return v <= c.At
	case OpGe:
		return v >= c.At
	}
	return false
}

func (SpansMidnight) Eval(r Row) bool { return r.Interval.SpansMidnight() }

func (c All) Eval(r Row) bool {
	for _, sub := range c {
		if !sub.Eval(r) {
			return false
		}
	}
	return true
}

func (c Any) Eval(r Row) bool {
	for _, sub := range c {
		if sub.Eval(r) {
			return true
		}
	}
	return false
}

func (DayIs) cond()         {}
func (Bound) cond()         {}
func (SpansMidnight) cond() {}
func (All) cond()           {}
func (Any) cond()           {}

// Consulted is the day whose interval decides (day, at): the previous day
// from midnight through 05:00 inclusive, the day itself afterwards.
func Consulted(day Day, at Clock) Day {
	if at <= EarlyMorningEnd {
		return day.Minus(1)
	}
	return day
}

// Rule is the condition a stored row must meet for its restaurant to be
// open at (day, at). Both ends of an interval are inclusive.
func Rule(day Day, at Clock) Cond {
	if at <= EarlyMorningEnd {
		return All{
			DayIs{Day: day.Minus(1)},
			SpansMidnight{},
			Any{
				Bound{Field: FieldStart, Op: OpLe, At: at},
				Bound{Field: FieldEnd, Op: OpGe, At: at},
			},
		}
	}
	return All{
		DayIs{Day: day},
		Bound{Field: FieldStart, Op: OpLe, At: at},
		Bound{Field: FieldEnd, Op: OpGe, At: at},
	}
}

// IsOpen evaluates Rule against the one interval it can match.
func IsOpen(s WeeklySchedule, day Day, at Clock) bool {
	d := Consulted(day, at)
	iv, ok := s.On(d)
	if !ok {
		return false
	}
	return Rule(day, at).Eval(Row{Day: d, Interval: iv})
}

