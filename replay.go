package replay

import (
	"github.com/kode4food/replay/channel"
	"github.com/kode4food/replay/channel/config"

	internal "github.com/kode4food/replay/internal/channel"
)

// NewChannel instantiates a new replay Channel. Every Receiver created from
// the Channel first replays all previously sent messages before receiving
// live ones
func NewChannel[Msg any](o ...config.Option) channel.Channel[Msg] {
	return internal.Make[Msg](o...)
}
