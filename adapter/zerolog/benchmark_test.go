package zerologadapter

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/lvlog"
)

func newBenchZerolog(min lvlog.Level) (*lvlog.Logger, zerolog.Logger) {
	l, err := lvlog.NewBuilder().WithSink(io.Discard).WithMinLevel(min).Build()
	if err != nil {
		panic(err)
	}
	return l, New(l)
}

func BenchmarkZerologWriter_NoFields(b *testing.B) {
	_, zl := newBenchZerolog(lvlog.LevelInfo)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		zl.Info().Msg("bench")
	}
}

func BenchmarkZerologWriter_5Fields(b *testing.B) {
	_, zl := newBenchZerolog(lvlog.LevelInfo)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		zl.Info().
			Str("a", "b").
			Int("i", i).
			Bool("ok", true).
			Dur("dur", time.Millisecond).
			Float64("f", 3.14).
			Msg("bench")
	}
}

func BenchmarkZerologWriter_Filtered(b *testing.B) {
	_, zl := newBenchZerolog(lvlog.LevelWarn)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		zl.Info().Int("i", i).Msg("filtered")
	}
}

func BenchmarkZerologWriter_FloorFiltered(b *testing.B) {
	l, _ := newBenchZerolog(lvlog.LevelWarn)
	zl := Floor(l)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		zl.Info().Int("i", i).Msg("filtered")
	}
}
