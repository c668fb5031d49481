package search

import (
	"context"
	"time"
)

// Clock reports the current time. The default reads the monotonic system clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// deadline is polled at every search node. Once expired it stays expired for
// the rest of the search.
type deadline struct {
	ctx     context.Context
	clock   Clock
	at      time.Time
	expired bool
}

// newDeadline starts a deadline budget after start, shortened to the context's
// own deadline when that comes first.
func newDeadline(ctx context.Context, clock Clock, start time.Time, budget time.Duration) *deadline {
	at := start.Add(budget)
	if d, ok := ctx.Deadline(); ok && d.Before(at) {
		at = d
	}
	return &deadline{ctx: ctx, clock: clock, at: at}
}

// check reports whether the search must stop.
func (d *deadline) check() bool {
	if d.expired {
		return true
	}
	if d.ctx.Err() != nil || d.clock.Now().After(d.at) {
		d.expired = true
	}
	return d.expired
}
