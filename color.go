package lvlog

// Color is an ANSI SGR escape sequence.
type Color string

const (
	Red     Color = "\x1b[31m"
	Green   Color = "\x1b[32m"
	Yellow  Color = "\x1b[33m"
	Blue    Color = "\x1b[34m"
	Magenta Color = "\x1b[35m"
	Cyan    Color = "\x1b[36m"
	White   Color = "\x1b[37m"
	Reset   Color = "\x1b[0m"
	Bright  Color = "\x1b[1m"
)
