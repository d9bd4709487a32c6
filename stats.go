package lvlog

import "sync/atomic"

type stats struct {
	emitted        atomic.Uint64
	writeErrors    atomic.Uint64
	callSiteErrors atomic.Uint64
	formatErrors   atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Emitted        uint64
	WriteErrors    uint64
	CallSiteErrors uint64
	FormatErrors   uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Emitted:        s.emitted.Load(),
		WriteErrors:    s.writeErrors.Load(),
		CallSiteErrors: s.callSiteErrors.Load(),
		FormatErrors:   s.formatErrors.Load(),
	}
}

func (s *stats) reset() {
	s.emitted.Store(0)
	s.writeErrors.Store(0)
	s.callSiteErrors.Store(0)
	s.formatErrors.Store(0)
}
