package channel

import (
	"log/slog"
	"runtime"

	"github.com/google/uuid"
)

type receiver[Msg any] struct {
	*cursor[Msg]
	id      uuid.UUID
	channel chan Msg
}

func makeReceiver[Msg any](c *cursor[Msg]) *receiver[Msg] {
	res := &receiver[Msg]{
		cursor:  c,
		id:      c.id,
		channel: startReceiver(c),
	}
	runtime.SetFinalizer(res, receiverDebugFinalizer[Msg])
	return res
}

func (r *receiver[Msg]) Receive() <-chan Msg {
	return r.channel
}

// startReceiver spins the pump that drives a Receiver's drain/wait loop.
// While the cursor trails the Log, messages are delivered in Log order.
// Once caught up, the pump parks on the wake Signal and re-checks the Log
// upon waking. Wakes carry no payload and may be coalesced or spurious
func startReceiver[Msg any](c *cursor[Msg]) chan Msg {
	ch := make(chan Msg)
	go func() {
		defer close(ch)
		for {
			m, off, ok := c.head()
			if !ok {
				select {
				case <-c.IsClosed():
					return
				case <-c.wake.Wait():
					continue
				}
			}
			select {
			case <-c.IsClosed():
				return
			case ch <- m:
				c.commit(off)
			}
		}
	}()
	return ch
}

func receiverDebugFinalizer[Msg any](r *receiver[Msg]) {
	select {
	case <-r.IsClosed():
	default:
		slog.Debug("receiver not closed before garbage collection", "id", r.id)
	}
}
