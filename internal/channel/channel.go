package channel

import (
	"github.com/kode4food/replay/channel"
	"github.com/kode4food/replay/channel/config"
)

// Channel is the internal implementation of a replay Channel. It owns the
// shared Log and the registry of Receiver wake Signals
type Channel[Msg any] struct {
	log   *Log[Msg]
	wakes *wakeRegistry
}

// Make instantiates a new internal Channel instance
func Make[Msg any](o ...config.Option) channel.Channel[Msg] {
	cfg, err := config.New(o...)
	if err != nil {
		panic(err)
	}
	return &Channel[Msg]{
		log:   makeLog[Msg](uint32(cfg.SegmentIncrement)),
		wakes: makeWakeRegistry(),
	}
}

// Length returns the number of messages sent to the Channel
func (c *Channel[_]) Length() uint64 {
	return c.log.Length()
}

// NewSender instantiates a new Channel Sender
func (c *Channel[Msg]) NewSender() channel.Sender[Msg] {
	return makeSender(c)
}

// NewReceiver instantiates a new Channel Receiver. Its cursor starts at
// offset zero, guaranteeing replay of everything sent so far
func (c *Channel[Msg]) NewReceiver() channel.Receiver[Msg] {
	return makeReceiver(c.makeCursor())
}

// get returns the message at the specified offset of the Channel's Log
func (c *Channel[Msg]) get(o uint64) (Msg, bool) {
	return c.log.get(o)
}

// put appends the specified message to the Log and then wakes every
// registered Receiver. The append is visible before any Signal is raised,
// so a Receiver that re-checks the Log upon waking is guaranteed to
// observe the new message
func (c *Channel[Msg]) put(msg Msg) {
	c.log.put(msg)
	c.wakes.raise()
}

func (c *Channel[Msg]) makeCursor() *cursor[Msg] {
	res := makeCursor(c)
	c.wakes.add(res.id, res.wake)
	return res
}
