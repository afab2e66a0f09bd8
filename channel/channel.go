package channel

import "github.com/kode4food/replay/message"

type (
	// Channel is a multi-sender, multi-receiver message channel backed by an
	// append-only Log. Receivers replay the entire history of the Channel
	// before transitioning to live delivery
	Channel[Msg any] interface {
		// Length returns the current size of the Channel's log
		Length() uint64

		// NewSender returns a new Sender for this Channel
		NewSender() Sender[Msg]

		// NewReceiver returns a new Receiver for this Channel. Its cursor
		// starts at the beginning of the log, so everything sent before its
		// creation is delivered first, in original send order
		NewReceiver() Receiver[Msg]
	}

	// Sender exposes a way to push messages to its associated Channel.
	// Messages pushed to the Channel are capable of being independently
	// received by all Receivers
	Sender[Msg any] message.ClosingSender[Msg]

	// Receiver exposes a way to receive messages from its associated
	// Channel. Each Receiver independently tracks its own position, and a
	// single Receiver may be safely driven by concurrent callers, each
	// message being delivered to exactly one of them
	Receiver[Msg any] message.ClosingReceiver[Msg]
)
