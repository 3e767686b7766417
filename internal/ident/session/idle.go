package session

import (
	"sync"
	"time"
)

// DefaultIdleDelay is the quiescence period before an automatic refresh.
const DefaultIdleDelay = 500 * time.Millisecond

// Idle schedules a full refresh after a period of quiet. The host calls
// Notify on every edit; once no edit has arrived for the configured
// delay, the session refreshes. A refresh in progress is cancelled by
// the next edit, which leaves the previous index in place per the
// session's swap-on-completion rule.
type Idle struct {
	mu      sync.Mutex
	session *Session
	delay   time.Duration
	timer   *time.Timer

	// gen is bumped on every Notify; an in-flight refresh aborts as
	// soon as it observes a newer generation.
	gen uint64
}

// NewIdle creates an idle refresh scheduler for the session.
func NewIdle(s *Session, delay time.Duration) *Idle {
	if delay <= 0 {
		delay = DefaultIdleDelay
	}
	return &Idle{session: s, delay: delay}
}

// Notify records an edit: the pending refresh (if any) is pushed back,
// and any refresh currently scanning is asked to stop.
func (i *Idle) Notify() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.gen++
	g := i.gen
	if i.timer != nil {
		i.timer.Stop()
	}
	i.timer = time.AfterFunc(i.delay, func() {
		i.session.Refresh(func() bool {
			return i.generation() == g
		})
	})
}

// Stop cancels any pending refresh timer.
func (i *Idle) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.gen++
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
}

// Flush runs a refresh immediately, bypassing the delay.
func (i *Idle) Flush() bool {
	i.mu.Lock()
	i.gen++
	g := i.gen
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
	i.mu.Unlock()

	return i.session.Refresh(func() bool {
		return i.generation() == g
	})
}

func (i *Idle) generation() uint64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.gen
}
