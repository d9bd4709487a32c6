package lvlog

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

// Logger writes leveled lines to a single sink. It is safe for concurrent
// use: every line reaches the sink in one Write issued under mu.
type Logger struct {
	sink io.Writer // as supplied; used by Sync
	out  io.Writer // sink after Console.Attach

	// mu serializes formatting and writing of whole lines.
	mu sync.Mutex

	opts      Options
	minLevel  atomic.Int64
	formatter Formatter
	resolver  CallerResolver
	console   Console
	clock     xclock.Clock // nil: xclock.Now()
	onError   ErrorHandler

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value
	obsMu     sync.Mutex

	st stats
}

// Factory: internal constructor.
func newLogger(cfg buildConfig) *Logger {
	l := &Logger{
		sink:      cfg.Sink,
		opts:      cfg.Options,
		formatter: cfg.Formatter,
		resolver:  cfg.Resolver,
		console:   cfg.Console,
		clock:     cfg.Clock,
		onError:   cfg.ErrorHandler,
	}
	if l.formatter == nil {
		l.formatter = TextFormatter{}
	}
	if l.resolver == nil {
		l.resolver = RuntimeResolver{}
	}
	if l.console == nil {
		l.console = DetectConsole(cfg.Sink)
	}
	l.out = l.console.Attach(cfg.Sink)
	l.minLevel.Store(int64(cfg.MinLevel))
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// New builds a Logger writing to sink with threshold LevelInfo and the
// default formatter, resolver and console. It panics if sink is nil.
func New(sink io.Writer, opts Options) *Logger {
	l, err := NewBuilder().WithSink(sink).WithOptions(opts).Build()
	if err != nil {
		panic(err)
	}
	return l
}

// Options returns the logger's prefix options.
func (l *Logger) Options() Options { return l.opts }

// Level returns the current threshold.
func (l *Logger) Level() Level { return Level(l.minLevel.Load()) }

// SetLevel changes the threshold for subsequent calls.
func (l *Logger) SetLevel(level Level) { l.minLevel.Store(int64(level)) }

// Enabled reports whether logs at 'level' would be emitted by this logger.
// Use to avoid building arguments in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return ShouldLog(level, Level(l.minLevel.Load()))
}

// Stats returns a snapshot of internal counters.
func (l *Logger) Stats() StatsSnapshot { return l.st.snapshot() }

// ResetStats resets internal counters.
func (l *Logger) ResetStats() { l.st.reset() }

func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

// Level entry points. The body is written as given; include the trailing
// newline in format. Errors are dropped: use Log to observe them.

func (l *Logger) Trace(format string, args ...any) {
	if !l.Enabled(LevelTrace) {
		return
	}
	_ = l.output(2, LevelTrace, sprintf(format, args), nil)
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.Enabled(LevelDebug) {
		return
	}
	_ = l.output(2, LevelDebug, sprintf(format, args), nil)
}

func (l *Logger) Info(format string, args ...any) {
	if !l.Enabled(LevelInfo) {
		return
	}
	_ = l.output(2, LevelInfo, sprintf(format, args), nil)
}

func (l *Logger) Warn(format string, args ...any) {
	if !l.Enabled(LevelWarn) {
		return
	}
	_ = l.output(2, LevelWarn, sprintf(format, args), nil)
}

func (l *Logger) Error(format string, args ...any) {
	if !l.Enabled(LevelError) {
		return
	}
	_ = l.output(2, LevelError, sprintf(format, args), nil)
}

// Fatal logs at LevelFatal. It does not exit the process.
func (l *Logger) Fatal(format string, args ...any) {
	if !l.Enabled(LevelFatal) {
		return
	}
	_ = l.output(2, LevelFatal, sprintf(format, args), nil)
}

// Log emits one line at level and returns the write error, if any.
// A failed call-site lookup still emits the line; the returned error then
// wraps ErrCallSite. Below-threshold calls return nil.
func (l *Logger) Log(level Level, format string, args ...any) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.output(2, level, sprintf(format, args), nil)
}

// LogDepth is Log for wrappers: skip 0 attributes the call site to the
// caller of LogDepth, 1 to its caller, and so on.
func (l *Logger) LogDepth(skip int, level Level, format string, args ...any) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.output(2+skip, level, sprintf(format, args), nil)
}

// LogSite emits msg with an explicit call site, for bridges that already know
// where the record came from. An empty file omits the call-site segment.
func (l *Logger) LogSite(level Level, file string, line int, msg string) error {
	if !l.Enabled(level) {
		return nil
	}
	var site CallerResolver = noSite{}
	if file != "" {
		site = staticSite{file: file, line: line}
	}
	return l.output(2, level, msg, site)
}

// Sync flushes the sink when it supports it (files, zapcore.WriteSyncer).
func (l *Logger) Sync() error {
	s, ok := l.sink.(interface{ Sync() error })
	if !ok {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return errors.Wrap(s.Sync(), "lvlog: sync")
}

// output emits one line. depth counts the frames from output up to, not
// including, the user's call site.
func (l *Logger) output(depth int, level Level, msg string, site CallerResolver) error {
	opts := l.opts
	switch site.(type) {
	case nil:
		site = l.resolver
	case noSite:
		opts.FileName, opts.LineNumber = false, false
	}

	at, n, err := l.writeLine(depth+1, level, msg, opts, site)

	if err != nil && l.onError != nil {
		l.onError(err)
	}

	v := l.observers.Load()
	if v == nil {
		return err
	}
	obs := v.([]Observer)
	if len(obs) == 0 {
		return err
	}
	entry := Entry{
		At:      at,
		Level:   level,
		Message: msg,
		Bytes:   n,
		Err:     err,
	}
	for _, o := range obs {
		o.OnLog(entry)
	}
	return err
}

// writeLine is the locked section: timestamp, prefix, body, optional blank
// line, one Write. skip is passed through to the formatter's Record.
func (l *Logger) writeLine(skip int, level Level, msg string, opts Options, site CallerResolver) (at time.Time, n int, err error) {
	buf := getBuf()
	defer putBuf(buf)

	l.mu.Lock()
	defer l.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			l.st.formatErrors.Add(1)
			err = errors.Errorf("lvlog: panic during formatting: %v", r)
		}
	}()

	at = l.now()
	rec := Record{
		Level:      level,
		Options:    opts,
		At:         at,
		Console:    l.console,
		Caller:     site,
		CallerSkip: skip,
	}
	ferr := l.formatter.WritePrefix(buf, &rec)
	if ferr != nil {
		if errors.Is(ferr, ErrCallSite) {
			l.st.callSiteErrors.Add(1)
		} else {
			l.st.formatErrors.Add(1)
		}
	}

	buf.writeString(msg)
	if opts.DoubleSpacing {
		buf.writeByte('\n')
	}

	n, werr := l.out.Write(buf.b)
	if werr != nil {
		l.st.writeErrors.Add(1)
		return at, n, errors.Wrap(werr, "lvlog: write")
	}
	if n < len(buf.b) {
		l.st.writeErrors.Add(1)
		return at, n, errors.Wrap(io.ErrShortWrite, "lvlog: write")
	}
	l.st.emitted.Add(1)
	return at, n, ferr
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// sprintf leaves format untouched when there are no args, so literal
// percent signs survive.
func sprintf(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

type staticSite struct {
	file string
	line int
}

func (s staticSite) Resolve(int) (string, int, error) { return s.file, s.line, nil }

type noSite struct{}

func (noSite) Resolve(int) (string, int, error) { return "", 0, ErrCallSite }
