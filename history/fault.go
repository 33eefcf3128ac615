package history

import (
	"errors"
	"log/slog"
)

// ErrTargetGone reports that a record's target object has been dropped
// from its registry before the record was replayed.
var ErrTargetGone = errors.New("target object is gone")

// FaultSink receives failures raised by targets during undo/redo replay.
// Sinks must not panic; they are called from inside replay loops.
type FaultSink interface {
	Fault(op string, rec Record, err error)
}

// SinkFunc adapts a plain function to a FaultSink.
type SinkFunc func(op string, rec Record, err error)

// Fault calls f.
func (f SinkFunc) Fault(op string, rec Record, err error) {
	f(op, rec, err)
}

// slogSink routes faults to a structured logger at warn level.
type slogSink struct {
	log *slog.Logger
}

func (s slogSink) Fault(op string, rec Record, err error) {
	s.log.Warn("history replay fault",
		"op", op,
		"record", rec.String(),
		"err", err)
}
