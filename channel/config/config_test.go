package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/replay"
	"github.com/kode4food/replay/channel/config"
)

func TestDefaults(t *testing.T) {
	as := assert.New(t)

	cfg, err := config.New()
	as.NoError(err)
	as.Equal(uint16(config.DefaultSegmentIncrement), cfg.SegmentIncrement)

	ch := replay.NewChannel[any](config.Defaults, config.Defaults)
	as.NotNil(ch)
}

func TestSegmentIncrementOption(t *testing.T) {
	as := assert.New(t)

	cfg, err := config.New(config.SegmentIncrement(128))
	as.NoError(err)
	as.Equal(uint16(128), cfg.SegmentIncrement)
}

func TestSegmentIncrementRequired(t *testing.T) {
	as := assert.New(t)

	_, err := config.New(config.SegmentIncrement(0))
	as.EqualError(err, config.ErrSegmentIncrementRequired)

	defer func() {
		rec := recover()
		as.NotNil(rec)
		as.EqualError(rec.(error), config.ErrSegmentIncrementRequired)
	}()
	replay.NewChannel[any](config.SegmentIncrement(0))
}
