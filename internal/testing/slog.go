package testing

import (
	"context"
	"log/slog"
)

// LogCapture is a slog.Handler that forwards records to a channel so tests
// can wait on log output from background routines and finalizers
type LogCapture struct {
	Records  chan slog.Record
	minLevel slog.Leveler
}

func NewLogCapture() *LogCapture {
	var minLevel slog.LevelVar
	minLevel.Set(slog.LevelDebug)
	return &LogCapture{
		Records:  make(chan slog.Record, 16),
		minLevel: &minLevel,
	}
}

func (h *LogCapture) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel.Level()
}

func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	select {
	case h.Records <- r:
	default:
	}
	return nil
}

func (h *LogCapture) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *LogCapture) WithGroup(_ string) slog.Handler {
	return h
}
