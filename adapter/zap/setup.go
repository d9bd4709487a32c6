package zapadapter

import (
	"go.uber.org/zap"

	"github.com/trickstertwo/lvlog"
)

// New builds a *zap.Logger writing through l. zap.AddCaller is added when l
// prints call sites, so lines point at the zap call, not at this package.
func New(l *lvlog.Logger, opts ...zap.Option) *zap.Logger {
	if l == nil {
		l = lvlog.L()
	}
	core := NewCore(l)
	o := l.Options()
	if o.FileName || o.LineNumber {
		opts = append([]zap.Option{zap.AddCaller()}, opts...)
	}
	return zap.New(core, opts...)
}

// Use builds a zap logger on top of l and installs it as zap's global
// (zap.L, zap.S). The returned func restores the previous globals.
func Use(l *lvlog.Logger, opts ...zap.Option) (*zap.Logger, func()) {
	zl := New(l, opts...)
	return zl, zap.ReplaceGlobals(zl)
}
