package zerologadapter

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/lvlog"
)

// Writer is a zerolog.LevelWriter that re-renders each JSON event as one
// lvlog line: "message key=value ...". Timestamp, level and caller columns
// are dropped from the body because lvlog prints its own prefix; a "caller"
// field, when present, becomes the [file:line] segment.
type Writer struct {
	l *lvlog.Logger
}

// NewWriter wraps l. A nil l uses the global lvlog logger.
func NewWriter(l *lvlog.Logger) Writer {
	if l == nil {
		l = lvlog.L()
	}
	return Writer{l: l}
}

// Write handles events without a level (zerolog.Logger.Log) at LevelInfo.
func (w Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

func (w Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	lvl := fromZerologLevel(level)
	if !w.l.Enabled(lvl) {
		return len(p), nil
	}

	var caller string
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufPool.Put(buf)

	cw := zerolog.ConsoleWriter{
		Out:          buf,
		NoColor:      true,
		PartsOrder:   []string{zerolog.CallerFieldName, zerolog.MessageFieldName},
		PartsExclude: []string{zerolog.TimestampFieldName, zerolog.LevelFieldName},
		FormatCaller: func(i interface{}) string {
			caller, _ = i.(string)
			return ""
		},
	}
	if _, err := cw.Write(p); err != nil {
		return 0, err
	}

	file, line := splitCaller(caller)
	if err := w.l.LogSite(lvl, file, line, buf.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}

var bufPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// splitCaller parses zerolog's default "path/file.go:123" caller value.
func splitCaller(s string) (string, int) {
	i := strings.LastIndexByte(s, ':')
	if i <= 0 {
		return "", 0
	}
	line, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return "", 0
	}
	return filepath.Base(s[:i]), line
}

// fromZerologLevel maps zerolog levels onto lvlog. Panic and Fatal become
// LevelFatal; zerolog still panics/exits after the write.
func fromZerologLevel(l zerolog.Level) lvlog.Level {
	switch l {
	case zerolog.TraceLevel:
		return lvlog.LevelTrace
	case zerolog.DebugLevel:
		return lvlog.LevelDebug
	case zerolog.InfoLevel, zerolog.NoLevel:
		return lvlog.LevelInfo
	case zerolog.WarnLevel:
		return lvlog.LevelWarn
	case zerolog.ErrorLevel:
		return lvlog.LevelError
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return lvlog.LevelFatal
	default:
		return lvlog.LevelInfo
	}
}

// toZerologLevel converts an lvlog level to zerolog.
// lvlog.LevelFatal is mapped to Error to avoid zerolog.Fatal() (which would exit the process).
func toZerologLevel(l lvlog.Level) zerolog.Level {
	switch {
	case l <= lvlog.LevelTrace:
		return zerolog.TraceLevel
	case l <= lvlog.LevelDebug:
		return zerolog.DebugLevel
	case l <= lvlog.LevelInfo:
		return zerolog.InfoLevel
	case l <= lvlog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
