package lvlog

import (
	"io"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

// ErrNoSink is returned by Build when no sink was configured.
var ErrNoSink = errors.New("lvlog: no sink configured")

// buildConfig for constructing a Logger (Factory data structure).
type buildConfig struct {
	Sink         io.Writer
	Options      Options
	MinLevel     Level
	Formatter    Formatter
	Resolver     CallerResolver
	Console      Console
	Clock        xclock.Clock // optional; nil reads xclock.Now() per line
	ErrorHandler ErrorHandler
	Observers    []Observer
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg buildConfig
}

func NewBuilder() *Builder {
	return &Builder{cfg: buildConfig{MinLevel: LevelInfo}}
}

func (b *Builder) WithSink(w io.Writer) *Builder {
	b.cfg.Sink = w
	return b
}

func (b *Builder) WithOptions(o Options) *Builder {
	b.cfg.Options = o
	return b
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

// WithFormatter replaces the default TextFormatter.
func (b *Builder) WithFormatter(f Formatter) *Builder {
	b.cfg.Formatter = f
	return b
}

// WithResolver replaces the runtime.Caller based call-site lookup.
func (b *Builder) WithResolver(r CallerResolver) *Builder {
	b.cfg.Resolver = r
	return b
}

// WithConsole overrides DetectConsole.
func (b *Builder) WithConsole(c Console) *Builder {
	b.cfg.Console = c
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.cfg.ErrorHandler = h
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	if b.cfg.Sink == nil {
		return nil, ErrNoSink
	}
	return newLogger(b.cfg), nil
}
