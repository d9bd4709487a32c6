package lvlog

import "io"

// Writer returns an io.Writer that emits every Write as one line at level.
// It lets log.Logger and other byte producers share the logger's sink lock:
//
//	std := log.New(l.Writer(lvlog.LevelWarn), "", 0)
//
// The frames above Write belong to the producer, not the user, so these
// lines never carry a [file:line] segment.
func (l *Logger) Writer(level Level) io.Writer {
	return &levelWriter{l: l, level: level}
}

type levelWriter struct {
	l     *Logger
	level Level
}

func (w *levelWriter) Write(p []byte) (int, error) {
	if !w.l.Enabled(w.level) {
		return len(p), nil
	}
	if err := w.l.output(2, w.level, string(p), noSite{}); err != nil {
		return 0, err
	}
	return len(p), nil
}
