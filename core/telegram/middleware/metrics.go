package middleware

import (
	"sync/atomic"

	tele "gopkg.in/telebot.v4"
)

// Counters aggregates coarse per-process update statistics. Values are
// exposed through Snapshot for the diagnostics command.
type Counters struct {
	messages  atomic.Int64
	callbacks atomic.Int64
	errors    atomic.Int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Messages  int64
	Callbacks int64
	Errors    int64
}

// Snapshot returns current counter values.
func (m *Counters) Snapshot() Snapshot {
	return Snapshot{
		Messages:  m.messages.Load(),
		Callbacks: m.callbacks.Load(),
		Errors:    m.errors.Load(),
	}
}

// Metrics counts processed updates and handler errors.
func Metrics(counters *Counters) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Callback() != nil {
				counters.callbacks.Add(1)
			} else if c.Message() != nil {
				counters.messages.Add(1)
			}
			err := next(c)
			if err != nil {
				counters.errors.Add(1)
			}
			return err
		}
	}
}
