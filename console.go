package lvlog

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Console applies display colors to a sink.
// Attach runs once at construction; SetColor runs per colored segment.
type Console interface {
	Attach(w io.Writer) io.Writer
	SetColor(w io.Writer, c Color) error
}

// ANSIConsole writes escape codes straight into the stream.
type ANSIConsole struct{}

func (ANSIConsole) Attach(w io.Writer) io.Writer { return w }

func (ANSIConsole) SetColor(w io.Writer, c Color) error {
	_, err := io.WriteString(w, string(c))
	return err
}

// NativeConsole routes the sink through go-colorable, which turns escape
// codes into console text attributes on Windows. Each line reaches the
// console in a single Write, so sequences are never split across calls.
type NativeConsole struct{ ANSIConsole }

func (NativeConsole) Attach(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f)
	}
	return w
}

// DetectConsole picks the Console variant for w.
// Only a real Windows console needs attribute translation; Cygwin/MSYS
// terminals, pipes and files take escape codes as-is.
func DetectConsole(w io.Writer) Console {
	f, ok := w.(*os.File)
	if !ok || runtime.GOOS != "windows" {
		return ANSIConsole{}
	}
	if isatty.IsTerminal(f.Fd()) {
		return NativeConsole{}
	}
	return ANSIConsole{}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
