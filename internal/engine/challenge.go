package engine

import (
	"sync"

	"github.com/dgz9/codetype/internal/logger"
	"github.com/dgz9/codetype/internal/models"
)

// SnippetSource supplies the next snippet when a timed challenge chains
// past a completed one. It carries whatever language/difficulty filters
// are active.
type SnippetSource func() models.Snippet

// Challenge drives one timed window over a chain of sessions. Player
// keystrokes and countdown ticks funnel through one mutex, so a tick
// landing between two keystrokes still sees a consistent buffer and
// discards it atomically.
type Challenge struct {
	mu      sync.Mutex
	session *Session
	window  *TimedWindow
	next    SnippetSource
	final   *models.SessionResult
	log     *logger.Logger
}

// NewChallenge starts a timed challenge of the given duration, seeding
// the session from the snippet source.
func NewChallenge(durationSeconds int, next SnippetSource, opts ...Option) (*Challenge, error) {
	w := NewTimedWindow()
	if err := w.Start(durationSeconds); err != nil {
		return nil, err
	}
	c := &Challenge{
		session: NewSession(opts...),
		window:  w,
		next:    next,
		log:     logger.Default().WithPrefix("challenge"),
	}
	c.session.Start(next(), w.Mode())
	return c, nil
}

// OnKey applies one keystroke. Completing a sub-snippet folds it into
// the window totals and immediately assigns a fresh snippet; no
// per-snippet result escapes a running window.
func (c *Challenge) OnKey(k Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.window.State() != WindowRunning {
		return
	}
	res := c.session.OnKey(k)
	if res == nil {
		return
	}
	c.window.Fold(res.CharCount, c.session.CorrectCount())
	c.log.Debug("sub-snippet completed: chars=%d, total=%d", res.CharCount, c.window.Stats().TotalChars)
	c.session.Start(c.next(), res.Mode)
}

// Tick consumes one countdown second. On the expiring tick the partial
// buffer is discarded and the aggregate result is returned; every other
// call returns nil.
func (c *Challenge) Tick() *models.SessionResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.window.Tick() {
		return nil
	}
	res := c.window.Finalize()
	c.final = &res
	c.log.Info("timed window ended: wpm=%d, accuracy=%d, snippets=%d",
		res.WPM, res.Accuracy, c.window.Stats().SnippetsCompleted)
	return &res
}

// Cancel abandons the challenge without emitting a result.
func (c *Challenge) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.window.Cancel()
}

// Result returns the final aggregate, or nil while running/cancelled.
func (c *Challenge) Result() *models.SessionResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.final
}

// Remaining returns the seconds left on the countdown.
func (c *Challenge) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window.Remaining()
}

// Stats returns the window totals accumulated so far.
func (c *Challenge) Stats() models.TimedStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window.Stats()
}

// Session exposes the live session for progress rendering. Callers
// must not mutate it.
func (c *Challenge) Session() *Session {
	return c.session
}
