package engine

import (
	"context"
	"sync"
	"time"
)

// Countdown delivers ticks to a callback at a fixed interval until the
// callback reports the window has ended, Stop is called, or the parent
// context is cancelled. At most one countdown should drive a challenge
// at a time; Stop waits for the tick goroutine to exit, so stopping the
// old countdown before starting a new one guarantees no overlap.
type Countdown struct {
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// StartCountdown begins ticking. The callback runs on the countdown's
// goroutine; callers serialize shared state behind their own reducer
// (see Challenge.Tick).
func StartCountdown(ctx context.Context, interval time.Duration, tick func() bool) *Countdown {
	ctx, cancel := context.WithCancel(ctx)
	c := &Countdown{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(c.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if tick() {
					return
				}
			}
		}
	}()
	return c
}

// Stop cancels the countdown and blocks until no further ticks can be
// delivered. Safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(c.cancel)
	<-c.done
}
