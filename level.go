package lvlog

import (
	"strings"

	"github.com/pkg/errors"
)

// Level mirrors slog numeric semantics and extends with Trace (-8) and Fatal (12).
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelFatal Level = 12
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("lvlog: unknown level")

// Levels lists every level in ascending severity.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// ShouldLog reports whether a message at level passes threshold.
func ShouldLog(level, threshold Level) bool { return level >= threshold }

// String returns the display name used inside the [LEVEL] tag.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Color returns the display color of the level tag.
func (l Level) Color() Color {
	switch l {
	case LevelTrace:
		return Blue
	case LevelDebug:
		return Cyan
	case LevelInfo:
		return Green
	case LevelWarn:
		return Yellow
	case LevelError:
		return Red
	case LevelFatal:
		return Magenta
	default:
		return White
	}
}

// ParseLevel accepts trace|debug|info|warn|warning|error|fatal in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, errors.Wrapf(ErrUnknownLevel, "%q", s)
	}
}

func (l Level) MarshalText() ([]byte, error) {
	if l.String() == "UNKNOWN" {
		return nil, errors.Wrapf(ErrUnknownLevel, "%d", int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
