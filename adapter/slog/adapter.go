package slogadapter

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/trickstertwo/lvlog"
)

// Handler is a slog.Handler that emits each record as one lvlog line:
// "message key=value group.key=value". The record's source (r.PC) becomes
// the [file:line] segment when the lvlog.Logger prints call sites.
type Handler struct {
	l      *lvlog.Logger
	pre    []byte // attrs bound by WithAttrs, already rendered
	prefix string // open groups, "a.b."
}

// NewHandler wraps l. A nil l uses the global lvlog logger.
func NewHandler(l *lvlog.Logger) *Handler {
	if l == nil {
		l = lvlog.L()
	}
	return &Handler{l: l}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.l.Enabled(fromSlog(level))
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	b := make([]byte, 0, len(r.Message)+len(h.pre)+16*r.NumAttrs()+1)
	b = append(b, r.Message...)
	b = append(b, h.pre...)
	r.Attrs(func(a slog.Attr) bool {
		b = appendAttr(b, h.prefix, a)
		return true
	})
	b = append(b, '\n')

	var file string
	var line int
	if r.PC != 0 {
		f, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if f.File != "" {
			file, line = filepath.Base(f.File), f.Line
		}
	}
	return h.l.LogSite(fromSlog(r.Level), file, line, string(b))
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	child := *h
	child.pre = append([]byte(nil), h.pre...)
	for _, a := range attrs {
		child.pre = appendAttr(child.pre, h.prefix, a)
	}
	return &child
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	child := *h
	child.prefix = h.prefix + name + "."
	return &child
}

// appendAttr renders " key=value", flattening groups into dotted keys.
func appendAttr(b []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return b
	}
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		if len(attrs) == 0 {
			return b
		}
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range attrs {
			b = appendAttr(b, p, ga)
		}
		return b
	}
	b = append(b, ' ')
	b = append(b, prefix...)
	b = append(b, a.Key...)
	b = append(b, '=')
	s := a.Value.String()
	if needsQuote(s) {
		return strconv.AppendQuote(b, s)
	}
	return append(b, s...)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c <= ' ' || c == '=' || c == '"' || c == 0x7f {
				return true
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
		i += size
	}
	return false
}

// fromSlog maps slog levels onto lvlog. lvlog levels share slog's numbering,
// so custom in-between levels round down to the nearest named one.
func fromSlog(l slog.Level) lvlog.Level {
	switch {
	case l < slog.LevelDebug:
		return lvlog.LevelTrace
	case l < slog.LevelInfo:
		return lvlog.LevelDebug
	case l < slog.LevelWarn:
		return lvlog.LevelInfo
	case l < slog.LevelError:
		return lvlog.LevelWarn
	case l < slog.Level(lvlog.LevelFatal):
		return lvlog.LevelError
	default:
		return lvlog.LevelFatal
	}
}
