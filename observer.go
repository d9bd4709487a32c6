package lvlog

import "time"

// Entry is sent to Observers after a line has been written.
type Entry struct {
	At      time.Time
	Level   Level
	Message string
	// Bytes is the number of bytes the sink accepted.
	Bytes int
	// Err is the write or formatting error of the line, if any.
	Err error
}

// Observer is notified for each emitted entry (Observer pattern).
// Implementations MUST be concurrency-safe; they run outside the sink lock.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }

// ErrorHandler receives write and formatting failures. Logging calls never
// return them to application code; this is the hook for callers who care.
type ErrorHandler func(error)
