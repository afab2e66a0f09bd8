package channel_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/replay"
	"github.com/kode4food/replay/channel/config"
	"github.com/kode4food/replay/message"
)

func TestLongLog(t *testing.T) {
	as := assert.New(t)

	ch := replay.NewChannel[any]()
	s := ch.NewSender()
	defer s.Close()

	r := ch.NewReceiver()
	defer r.Close()

	go func() {
		for i := 0; i < 10000; i++ {
			s.Send() <- i
		}
	}()

	for i := 0; i < 10000; i++ {
		e := <-r.Receive()
		as.Equal(i, e)
	}

	as.Equal(uint64(10000), ch.Length())
}

func TestReceiverReadsAllMessages(t *testing.T) {
	as := assert.New(t)

	ch := replay.NewChannel[any]()
	s := ch.NewSender()
	defer s.Close()
	for i := 0; i < 100; i++ {
		s.Send() <- i
	}

	r := ch.NewReceiver()
	defer r.Close()
	for i := 0; i < 100; i++ {
		e := <-r.Receive()
		as.Equal(i, e)
	}
}

func TestSegmentBoundaries(t *testing.T) {
	as := assert.New(t)

	segmentSize := config.DefaultSegmentIncrement
	ch := replay.NewChannel[any]()
	s := ch.NewSender()
	defer s.Close()

	for i := 0; i < segmentSize*3+5; i++ {
		s.Send() <- i
	}

	r := ch.NewReceiver()
	defer r.Close()
	for i := 0; i < segmentSize*3+5; i++ {
		e := <-r.Receive()
		as.Equal(i, e)
	}
}

func TestConcurrentSenders(t *testing.T) {
	as := assert.New(t)

	const perSender = 1000

	ch := replay.NewChannel[int]()
	var wg sync.WaitGroup
	for base := 0; base < 2; base++ {
		s := ch.NewSender()
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			defer s.Close()
			for i := 0; i < perSender; i++ {
				s.Send() <- base*perSender + i
			}
		}(base)
	}
	wg.Wait()

	r := ch.NewReceiver()
	defer r.Close()

	seen := map[int]bool{}
	last := map[int]int{0: -1, 1: -1}
	for i := 0; i < perSender*2; i++ {
		v := message.MustReceive(r)
		as.False(seen[v], "message delivered twice")
		seen[v] = true

		// each sender's own messages arrive in the order it sent them
		sender := v / perSender
		as.Less(last[sender], v%perSender)
		last[sender] = v % perSender
	}
	as.Len(seen, perSender*2)
}

func TestIdenticalHistory(t *testing.T) {
	as := assert.New(t)

	ch := replay.NewChannel[int]()
	s := ch.NewSender()
	defer s.Close()
	for i := 0; i < 50; i++ {
		s.Send() <- i * 3
	}

	// successive fresh receivers always observe the identical sequence
	for pass := 0; pass < 2; pass++ {
		r := ch.NewReceiver()
		for i := 0; i < 50; i++ {
			as.Equal(i*3, message.MustReceive(r))
		}
		r.Close()
	}
}

func TestSuspendUntilSend(t *testing.T) {
	as := assert.New(t)

	ch := replay.NewChannel[string]()
	s := ch.NewSender()
	defer s.Close()

	r := ch.NewReceiver()
	defer r.Close()

	// nothing sent yet, so receive must not complete
	e, ok := message.Poll[string](r, 50*time.Millisecond)
	as.Equal("", e)
	as.False(ok)

	s.Send() <- "wake up"

	e, ok = message.Poll[string](r, time.Second)
	as.Equal("wake up", e)
	as.True(ok)
}

func TestSendWithoutReceivers(t *testing.T) {
	as := assert.New(t)

	ch := replay.NewChannel[int]()
	s := ch.NewSender()
	s.Send() <- 42
	s.Close()

	// history survives for receivers created later
	r := ch.NewReceiver()
	defer r.Close()
	as.Equal(42, message.MustReceive(r))
	as.Equal(uint64(1), ch.Length())
}

func TestMakeChannelError(t *testing.T) {
	as := assert.New(t)
	defer func() {
		as.Error(recover().(error))
	}()
	replay.NewChannel[any](config.SegmentIncrement(0))
}
