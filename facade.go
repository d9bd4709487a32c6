package lvlog

// Facade helpers using the global Singleton logger.
// Usage: lvlog.Info("listening on %s\n", addr)

func Trace(format string, args ...any) {
	if l := L(); l.Enabled(LevelTrace) {
		_ = l.output(2, LevelTrace, sprintf(format, args), nil)
	}
}

func Debug(format string, args ...any) {
	if l := L(); l.Enabled(LevelDebug) {
		_ = l.output(2, LevelDebug, sprintf(format, args), nil)
	}
}

func Info(format string, args ...any) {
	if l := L(); l.Enabled(LevelInfo) {
		_ = l.output(2, LevelInfo, sprintf(format, args), nil)
	}
}

func Warn(format string, args ...any) {
	if l := L(); l.Enabled(LevelWarn) {
		_ = l.output(2, LevelWarn, sprintf(format, args), nil)
	}
}

func Error(format string, args ...any) {
	if l := L(); l.Enabled(LevelError) {
		_ = l.output(2, LevelError, sprintf(format, args), nil)
	}
}

// Fatal logs at LevelFatal on the global logger; it does not exit.
func Fatal(format string, args ...any) {
	if l := L(); l.Enabled(LevelFatal) {
		_ = l.output(2, LevelFatal, sprintf(format, args), nil)
	}
}
