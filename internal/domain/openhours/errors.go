package openhours

import (
	"errors"
	"fmt"
)

// ErrIncompleteRecord means a source record lacks the name or the
// schedule column.
var ErrIncompleteRecord = errors.New("incomplete restaurant record")

// MalformedScheduleError rejects a whole schedule because one group could
// not be read or opens and closes at the same time.
type MalformedScheduleError struct {
	Group  string
	Reason string
}

func (e *MalformedScheduleError) Error() string {
	return fmt.Sprintf("malformed schedule group %q: %s", e.Group, e.Reason)
}

// UnknownDayError is only returned by explicit day decoding. The schedule
// parser skips unknown day tokens instead.
type UnknownDayError struct {
	Token string
}

func (e *UnknownDayError) Error() string {
	return fmt.Sprintf("unknown day %q", e.Token)
}

func IsMalformedSchedule(err error) bool {
	var me *MalformedScheduleError
	return errors.As(err, &me)
}
