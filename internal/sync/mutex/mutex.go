package mutex

import (
	"sync"
	"sync/atomic"
)

// InitialMutex is a mutex that can eventually be bypassed. Good for
// structures that are initially mutable, but thereafter read-only, such as
// log segments that have been sealed
type InitialMutex struct {
	mu    sync.Mutex
	state atomic.Int32
}

// Status constants
const (
	Disabled int32 = iota - 1
	Unlocked
	Locked
)

// DisableLock instructs the InitialMutex to ignore all subsequent calls to
// Lock and Unlock
func (m *InitialMutex) DisableLock() {
	switch m.state.Load() {
	case Disabled:
		return
	case Locked:
		m.state.Store(Disabled)
		m.mu.Unlock()
	case Unlocked:
		m.mu.Lock()
		m.state.Store(Disabled)
		m.mu.Unlock()
	}
}

// Lock potentially locks this InitialMutex, if enabled
func (m *InitialMutex) Lock() {
	if m.state.Load() == Disabled {
		return
	}
	m.mu.Lock()
	if m.state.Load() == Disabled {
		m.mu.Unlock()
		return
	}
	m.state.Store(Locked)
}

// Unlock potentially unlocks this InitialMutex, if enabled
func (m *InitialMutex) Unlock() {
	if m.state.Load() == Locked {
		m.state.Store(Unlocked)
		m.mu.Unlock()
	}
}
