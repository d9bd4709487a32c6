package zapadapter

import (
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/lvlog"
)

// Core is a zapcore.Core that emits every entry as one lvlog line.
//
// The lvlog.Logger owns filtering, the prefix (timestamp, level tag, call
// site) and the sink lock; zap only renders the message and its fields.
// Entries carry zap's caller when the zap.Logger was built with
// zap.AddCaller, so the [file:line] segment points at the zap call site.
type Core struct {
	l   *lvlog.Logger
	enc zapcore.Encoder // holds fields bound by With
}

// NewCore wraps l. A nil l uses the global lvlog logger.
func NewCore(l *lvlog.Logger) *Core {
	if l == nil {
		l = lvlog.L()
	}
	return &Core{l: l, enc: zapcore.NewConsoleEncoder(bodyEncoderConfig())}
}

// bodyEncoderConfig renders "message {fields}\n": no time, level, name or
// caller columns, which lvlog provides itself.
func bodyEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

func (c *Core) Enabled(lvl zapcore.Level) bool { return c.l.Enabled(fromZapLevel(lvl)) }

// Level reports the current lvlog threshold in zap terms (zapcore.LevelOf).
func (c *Core) Level() zapcore.Level { return toZapLevel(c.l.Level()) }

// With binds fields once onto a cloned encoder.
func (c *Core) With(fs []zapcore.Field) zapcore.Core {
	enc := c.enc.Clone()
	for i := range fs {
		fs[i].AddTo(enc)
	}
	return &Core{l: c.l, enc: enc}
}

func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the body and hands it to lvlog with zap's caller, if any.
func (c *Core) Write(ent zapcore.Entry, fs []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fs)
	if err != nil {
		return err
	}
	msg := buf.String()
	buf.Free()

	var file string
	var line int
	if ent.Caller.Defined {
		file, line = filepath.Base(ent.Caller.File), ent.Caller.Line
	}
	return c.l.LogSite(fromZapLevel(ent.Level), file, line, msg)
}

func (c *Core) Sync() error { return c.l.Sync() }

// fromZapLevel maps zap levels onto lvlog. DPanic, Panic and Fatal become
// LevelFatal; zap still applies its own panic/exit hooks after Write.
func fromZapLevel(l zapcore.Level) lvlog.Level {
	switch {
	case l < zapcore.InfoLevel:
		return lvlog.LevelDebug
	case l < zapcore.WarnLevel:
		return lvlog.LevelInfo
	case l < zapcore.ErrorLevel:
		return lvlog.LevelWarn
	case l < zapcore.DPanicLevel:
		return lvlog.LevelError
	default:
		return lvlog.LevelFatal
	}
}

func toZapLevel(l lvlog.Level) zapcore.Level {
	switch {
	case l <= lvlog.LevelDebug:
		return zapcore.DebugLevel // zap has no trace; map to debug
	case l <= lvlog.LevelInfo:
		return zapcore.InfoLevel
	case l <= lvlog.LevelWarn:
		return zapcore.WarnLevel
	case l <= lvlog.LevelError:
		return zapcore.ErrorLevel
	default:
		// Avoid Fatal/DPanic so filtering never exits.
		return zapcore.ErrorLevel
	}
}
