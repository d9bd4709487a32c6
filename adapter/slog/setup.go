package slogadapter

import (
	"log/slog"

	"github.com/trickstertwo/lvlog"
)

// New returns a *slog.Logger writing through l.
func New(l *lvlog.Logger) *slog.Logger {
	return slog.New(NewHandler(l))
}

// Use installs New(l) as slog's default logger (which also redirects the
// standard log package) and returns a func restoring the previous default.
func Use(l *lvlog.Logger) (*slog.Logger, func()) {
	prev := slog.Default()
	sl := New(l)
	slog.SetDefault(sl)
	return sl, func() { slog.SetDefault(prev) }
}
