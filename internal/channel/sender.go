package channel

import (
	"log/slog"
	"runtime"

	"github.com/google/uuid"

	"github.com/kode4food/replay/closer"
)

type sender[Msg any] struct {
	closer.Closer
	id      uuid.UUID
	channel chan Msg
}

func makeSender[Msg any](ch *Channel[Msg]) *sender[Msg] {
	intake := startSender(ch)
	res := &sender[Msg]{
		id:      uuid.New(),
		channel: intake,
		Closer: makeCloser(func() {
			close(intake)
		}),
	}
	runtime.SetFinalizer(res, senderDebugFinalizer[Msg])
	return res
}

func (s *sender[Msg]) Send() chan<- Msg {
	return s.channel
}

// startSender spins the pump that appends intake messages to the Channel.
// Appending never waits on any Receiver, so sends only block for the length
// of the append and fan-out
func startSender[Msg any](ch *Channel[Msg]) chan Msg {
	intake := make(chan Msg)
	go func() {
		for m := range intake {
			ch.put(m)
		}
	}()
	return intake
}

func senderDebugFinalizer[Msg any](s *sender[Msg]) {
	select {
	case <-s.IsClosed():
	default:
		slog.Debug("sender not closed before garbage collection", "id", s.id)
	}
}
