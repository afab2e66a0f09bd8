package channel

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kode4food/replay/internal/sync/notify"
)

// wakeRegistry manages the wake Signal of every live Receiver on behalf of
// a Channel. Registration happens at Receiver construction, removal when a
// Receiver is closed. Raising the Signal of a Receiver that closed
// mid-fan-out is harmless
type wakeRegistry struct {
	wakes map[uuid.UUID]*notify.Signal
	mu    sync.RWMutex
}

func makeWakeRegistry() *wakeRegistry {
	return &wakeRegistry{
		wakes: map[uuid.UUID]*notify.Signal{},
	}
}

func (r *wakeRegistry) add(i uuid.UUID, s *notify.Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wakes[i] = s
}

func (r *wakeRegistry) remove(i uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wakes, i)
}

// raise signals every registered Receiver that the Log may have grown
func (r *wakeRegistry) raise() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.wakes {
		s.Raise()
	}
}
