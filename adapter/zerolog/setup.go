package zerologadapter

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trickstertwo/lvlog"
)

// New returns a zerolog.Logger writing through l.
//
// zerolog's own level is left at Trace so l.SetLevel takes effect on the
// next event; pass Floor to pre-filter in zerolog instead.
func New(l *lvlog.Logger) zerolog.Logger {
	return zerolog.New(NewWriter(l))
}

// Floor is New with zerolog's level pinned to l's current threshold, which
// skips event construction for disabled levels at the cost of ignoring later
// SetLevel calls that lower the threshold.
func Floor(l *lvlog.Logger) zerolog.Logger {
	if l == nil {
		l = lvlog.L()
	}
	return New(l).Level(toZerologLevel(l.Level()))
}

// Use installs New(l) with caller information as the zerolog/log global and
// returns a func restoring the previous one.
func Use(l *lvlog.Logger) (zerolog.Logger, func()) {
	prev := log.Logger
	zl := New(l).With().Caller().Logger()
	log.Logger = zl
	return zl, func() { log.Logger = prev }
}
