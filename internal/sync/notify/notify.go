package notify

import "sync"

// Signal is a single-slot readiness signal shared between one waiter and any
// number of raisers. It carries no payload, only the fact that something may
// have changed. The value of a structure like this over a Cond is that a
// channel can participate in a select
type Signal struct {
	ch     chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewSignal returns a new Signal in its lowered state
func NewSignal() *Signal {
	return &Signal{
		// must be buffered so that Raise never blocks
		ch: make(chan struct{}, 1),
	}
}

// Raise wakes up any process waiting on the Signal without blocking the
// calling routine. Consecutive Raises coalesce into a single wake-up, and
// raising a closed Signal is a no-op, so a stale handle may be signaled
// safely
func (s *Signal) Raise() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Wait returns the underlying channel and can be used to wait for the Raise
// method having been called. The channel is closed when the Signal is
// closed, releasing any waiter
func (s *Signal) Wait() <-chan struct{} {
	return s.ch
}

// Close permanently releases the Signal's waiters. Closing an already
// closed Signal is a no-op
func (s *Signal) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}
