package channel

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kode4food/replay/closer"
	"github.com/kode4food/replay/internal/sync/notify"
)

// cursor tracks a Receiver's private position within a Channel's Log. A
// fresh cursor starts at offset zero, which is what produces full-history
// replay for late-joining Receivers
type cursor[Msg any] struct {
	closer.Closer
	id      uuid.UUID
	channel *Channel[Msg]
	wake    *notify.Signal
	offset  atomic.Uint64
}

func makeCursor[Msg any](ch *Channel[Msg]) *cursor[Msg] {
	cID := uuid.New()
	wake := notify.NewSignal()
	if ch.Length() != 0 {
		wake.Raise()
	}

	return &cursor[Msg]{
		id:      cID,
		channel: ch,
		wake:    wake,
		Closer: makeCloser(func() {
			wake.Close()
			ch.wakes.remove(cID)
		}),
	}
}

// head returns the message at the cursor's current offset, without
// advancing, along with the offset itself. The final result is false when
// the cursor has caught up with the Log
func (c *cursor[Msg]) head() (Msg, uint64, bool) {
	off := c.offset.Load()
	if m, ok := c.channel.get(off); ok {
		return m, off, true
	}
	var zero Msg
	return zero, off, false
}

// commit advances the cursor past the specified offset. The compare and
// swap guarantees that exactly one caller claims each offset, so a message
// is never delivered twice even under racing claimants
func (c *cursor[_]) commit(off uint64) bool {
	return c.offset.CompareAndSwap(off, off+1)
}
