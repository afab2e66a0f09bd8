package message

import (
	"errors"

	"github.com/kode4food/replay/closer"
)

type (
	// Sender is a type that is capable of sending a Message via a channel
	Sender[Msg any] interface {
		Send() chan<- Msg
	}

	// ClosingSender is a Sender that is capable of being closed
	ClosingSender[Msg any] interface {
		closer.Closer
		Sender[Msg]
	}
)

var (
	ErrSenderClosed = errors.New("sender closed")
)

// Send will send a message to the Sender, returning whether the message was
// accepted. A closed Sender will not accept the message
func Send[Msg any](s ClosingSender[Msg], m Msg) bool {
	if closer.IsClosed(s) {
		return false
	}
	s.Send() <- m
	return true
}

// MustSend will send a message to a Sender or panic if it is closed
func MustSend[Msg any](s ClosingSender[Msg], m Msg) {
	if !Send(s, m) {
		panic(ErrSenderClosed)
	}
}
