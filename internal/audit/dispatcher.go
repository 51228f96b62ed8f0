package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	Source string
	Line   int
	Name   string
	Reason string
}

type Writer interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher hands events to a single background writer. Dispatch never
// blocks the caller: when the queue is full the event is dropped.
type Dispatcher struct {
	writer Writer
	log    *zap.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(writer Writer, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		log:    log,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.writer.Log(context.Background(), ev); err != nil {
			d.log.Error("audit write failed", zap.Int("line", ev.Line), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.Int("line", ev.Line))
	}
}

// Close drains queued events and stops the worker. Dispatch must not be
// called afterwards.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.queue) })
	<-d.done
}
