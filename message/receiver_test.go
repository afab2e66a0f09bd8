package message_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/replay"
	"github.com/kode4food/replay/message"
)

func TestPoll(t *testing.T) {
	as := assert.New(t)
	ch := replay.NewChannel[any]()
	s := ch.NewSender()
	message.Send(s, "hello")

	r := ch.NewReceiver()
	e, ok := message.Poll(r, time.Millisecond)
	as.Equal("hello", e)
	as.True(ok)

	e, ok = message.Poll[any](r, time.Millisecond)
	as.Nil(e)
	as.False(ok)
	r.Close()
	s.Close()
}

func TestMustReceive(t *testing.T) {
	as := assert.New(t)
	ch := replay.NewChannel[any]()
	s := ch.NewSender()
	message.Send(s, "hello")

	r := ch.NewReceiver()
	as.Equal("hello", message.MustReceive(r))
	r.Close()
	s.Close()

	defer func() {
		as.ErrorIs(recover().(error), message.ErrReceiverClosed)
	}()
	message.MustReceive(r)
}
