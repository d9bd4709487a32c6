package lvlog

import (
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// ErrCallSite marks a failed call-site resolution. The line is still emitted
// without the [file:line] segment.
var ErrCallSite = errors.New("lvlog: call site unavailable")

// CallerResolver returns the source location skip frames above the caller
// of Resolve (skip 0 is the function calling Resolve).
type CallerResolver interface {
	Resolve(skip int) (file string, line int, err error)
}

// CallerFunc adapts a function to CallerResolver.
type CallerFunc func(skip int) (string, int, error)

func (f CallerFunc) Resolve(skip int) (string, int, error) { return f(skip + 1) }

// RuntimeResolver walks the goroutine stack with runtime.Caller and reports
// the base name of the source file.
type RuntimeResolver struct{}

func (RuntimeResolver) Resolve(skip int) (string, int, error) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0, errors.Wrapf(ErrCallSite, "skip=%d", skip)
	}
	return filepath.Base(file), line, nil
}
