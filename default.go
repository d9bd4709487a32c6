package lvlog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// installMu serializes building the default in L so only one output is opened.
var installMu sync.Mutex

// buildDefault is swapped in tests.
var buildDefault = defaultLogger

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger, installing Default() on first use.
func L() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	installMu.Lock()
	defer installMu.Unlock()
	if l := global.Load(); l != nil {
		return l
	}
	l, closer := buildDefault()
	if !global.CompareAndSwap(nil, l) {
		// SetGlobal won the race.
		_ = closer.Close()
	}
	return global.Load()
}

// Default builds a logger from the LVLOG_* environment (see ConfigFromEnv).
// Invalid settings fall back to stderr at LevelInfo with color enabled only
// when stderr is a terminal.
func Default() *Logger {
	// The file (if any) lives as long as the process.
	l, _ := defaultLogger()
	return l
}

func defaultLogger() (*Logger, io.Closer) {
	cfg, err := ConfigFromEnv()
	if err == nil {
		if l, closer, err := cfg.Open(); err == nil {
			return l, closer
		}
	}
	return New(os.Stderr, Options{Color: IsTerminal(os.Stderr)}), nopCloser{}
}
