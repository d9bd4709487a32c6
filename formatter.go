package lvlog

import (
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Record is everything a Formatter may need to write one line prefix.
type Record struct {
	Level   Level
	Options Options
	// At is the authoritative timestamp of the line, read under the sink lock.
	At      time.Time
	Console Console
	Caller  CallerResolver
	// CallerSkip counts the logger frames between the formatter's caller and
	// the user's call site.
	CallerSkip int
}

// Formatter writes the prefix of a line. It runs while the logger holds the
// sink lock; w is the line buffer, not the sink itself.
type Formatter interface {
	WritePrefix(w io.Writer, r *Record) error
}

// FormatterFunc adapts a function to Formatter. The adapter frame is added to
// CallerSkip so f sees the same Record a Formatter method would.
type FormatterFunc func(w io.Writer, r *Record) error

func (f FormatterFunc) WritePrefix(w io.Writer, r *Record) error {
	rr := *r
	rr.CallerSkip++
	return f(w, &rr)
}

// TextFormatter emits "[ts ][LEVEL]: [[file:line]: ]".
// A failed call-site lookup drops the location segment and returns an error
// wrapping ErrCallSite after the rest of the prefix is written.
type TextFormatter struct{}

func (TextFormatter) WritePrefix(w io.Writer, r *Record) error {
	p := prefixWriter{w: w, con: r.Console}
	if p.con == nil {
		p.con = ANSIConsole{}
	}
	opts := r.Options

	if opts.Timestamp {
		var tmp [24]byte
		b := strconv.AppendInt(tmp[:0], r.At.Unix(), 10)
		p.bytes(append(b, ' '))
	}

	tag := "[" + r.Level.String() + "]"
	if opts.Color {
		p.color(Reset)
		p.color(r.Level.Color())
		p.str(tag)
		p.color(Reset)
		p.str(": ")
	} else {
		p.str(tag + ": ")
	}
	if p.err != nil || !opts.callSite() {
		return p.err
	}

	if r.Caller == nil {
		return errors.Wrap(ErrCallSite, "no resolver")
	}
	// +1 for this frame.
	file, line, err := r.Caller.Resolve(r.CallerSkip + 1)
	if err != nil {
		return errors.WithMessage(err, "prefix")
	}
	site := "[" + file + ":" + strconv.Itoa(line) + "]"
	if opts.Color {
		p.color(Reset)
		p.color(Bright)
		p.str(site)
		p.color(Reset)
		p.str(": ")
	} else {
		p.str(site + ": ")
	}
	return p.err
}

// prefixWriter keeps the first write error and skips everything after it.
type prefixWriter struct {
	w   io.Writer
	con Console
	err error
}

func (p *prefixWriter) str(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *prefixWriter) bytes(b []byte) {
	if p.err == nil {
		_, p.err = p.w.Write(b)
	}
}

func (p *prefixWriter) color(c Color) {
	if p.err == nil {
		p.err = p.con.SetColor(p.w, c)
	}
}
