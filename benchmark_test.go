package lvlog

import (
	"io"
	"testing"
	"time"

	"github.com/trickstertwo/xclock/adapter/frozen"
)

// countingDiscard keeps the write observable without retaining bytes.
type countingDiscard struct{ n int }

func (d *countingDiscard) Write(p []byte) (int, error) {
	d.n += len(p)
	return len(p), nil
}

func newBenchLogger(min Level, opts Options) *Logger {
	l, err := NewBuilder().
		WithSink(&countingDiscard{}).
		WithOptions(opts).
		WithMinLevel(min).
		WithConsole(ANSIConsole{}).
		Build()
	if err != nil {
		panic(err)
	}
	return l
}

func BenchmarkInfo_Plain(b *testing.B) {
	l := newBenchLogger(LevelDebug, Options{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("ok\n")
	}
}

func BenchmarkInfo_Args(b *testing.B) {
	l := newBenchLogger(LevelDebug, Options{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("req %d took %s\n", i, 25*time.Millisecond)
	}
}

func BenchmarkInfo_ColorTimestamp(b *testing.B) {
	l := newBenchLogger(LevelDebug, Options{Color: true, Timestamp: true})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("ok\n")
	}
}

func BenchmarkInfo_CallSite(b *testing.B) {
	// runtime.Caller dominates.
	l := newBenchLogger(LevelDebug, Options{FileName: true, LineNumber: true})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("ok\n")
	}
}

func BenchmarkFiltered(b *testing.B) {
	// Min level WARN filters INFO before formatting.
	l := newBenchLogger(LevelWarn, Options{Color: true, Timestamp: true, LineNumber: true})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("not-logged %d\n", i)
	}
}

func BenchmarkParallel(b *testing.B) {
	l := newBenchLogger(LevelDebug, Options{Color: true, Timestamp: true})
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Debug("p %d\n", i)
			i++
		}
	})
}

func BenchmarkWriter_StdLog(b *testing.B) {
	l := newBenchLogger(LevelDebug, Options{})
	w := l.Writer(LevelInfo)
	msg := []byte("from io.Writer\n")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = w.Write(msg)
	}
}

// Frozen clock vs the default fast-path system clock.
func BenchmarkInfo_FrozenClock(b *testing.B) {
	l, err := NewBuilder().
		WithSink(io.Discard).
		WithOptions(Options{Timestamp: true}).
		WithClock(frozen.New(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))).
		Build()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("frozen\n")
	}
}
