package config

import "errors"

type (
	// Config conveys the properties of a Channel that one can configure
	// using Options
	Config struct {
		SegmentIncrement uint16
	}

	// Option applies an option to a channel configuration instance
	Option func(*Config) error
)

// Defaults
const (
	DefaultSegmentIncrement = 32
)

// Error messages
const (
	ErrSegmentIncrementRequired = "segment increment must be greater than zero"
)

// New produces a Config from the specified Options, starting from the
// default values
func New(o ...Option) (*Config, error) {
	res := &Config{
		SegmentIncrement: DefaultSegmentIncrement,
	}
	for _, applyOption := range o {
		if err := applyOption(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Defaults is an Option that leaves the default configuration untouched
func Defaults(_ *Config) error {
	return nil
}

// SegmentIncrement returns an Option that sets the capacity of each new
// log segment allocated by the Channel
func SegmentIncrement(size uint16) Option {
	return func(c *Config) error {
		if size == 0 {
			return errors.New(ErrSegmentIncrementRequired)
		}
		c.SegmentIncrement = size
		return nil
	}
}
