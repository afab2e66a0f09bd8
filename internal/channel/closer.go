package channel

import (
	"sync"

	"github.com/kode4food/replay/closer"
)

type Closer struct {
	closed  chan struct{}
	onClose func()
	once    sync.Once
}

func makeCloser(onClose func()) closer.Closer {
	return &Closer{
		closed:  make(chan struct{}),
		onClose: onClose,
	}
}

func (c *Closer) Close() {
	c.once.Do(func() {
		close(c.closed)
		if c.onClose != nil {
			c.onClose()
		}
	})
}

func (c *Closer) IsClosed() <-chan struct{} {
	return c.closed
}
