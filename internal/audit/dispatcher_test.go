package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingWriter struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (w *recordingWriter) Log(_ context.Context, ev Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, ev)
	return w.err
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	w := &recordingWriter{}
	d := NewDispatcher(w, zap.NewNop())

	d.Dispatch(Event{Line: 2, Name: "Noon Cafe", Reason: "start and end time are the same"})
	d.Dispatch(Event{Line: 5, Reason: "incomplete restaurant record"})
	d.Close()

	assert.Equal(t, []int{2, 5}, []int{w.events[0].Line, w.events[1].Line})
	assert.Equal(t, "Noon Cafe", w.events[0].Name)
}

func TestDispatcherSurvivesWriterErrors(t *testing.T) {
	w := &recordingWriter{err: errors.New("db down")}
	d := NewDispatcher(w, zap.NewNop())

	d.Dispatch(Event{Line: 1})
	d.Dispatch(Event{Line: 2})
	d.Close()
	d.Close()

	assert.Len(t, w.events, 2)
}
