package lvlog

// Options toggles the prefix segments. The zero value emits "[LEVEL]: " only.
type Options struct {
	// Color wraps the level tag and call-site in ANSI color codes.
	Color bool
	// FileName includes the caller's source file in the prefix.
	FileName bool
	// LineNumber includes the caller's source line in the prefix.
	LineNumber bool
	// Timestamp prepends Unix epoch seconds.
	Timestamp bool
	// DoubleSpacing appends an extra newline after each message.
	DoubleSpacing bool
}

func (o Options) callSite() bool { return o.FileName || o.LineNumber }
