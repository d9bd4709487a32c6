// Package lvlog is a small leveled logger for consoles and files.
//
// A Logger filters by level, prefixes each line with an optional timestamp,
// a (optionally colored) [LEVEL] tag and an optional [file:line] call site,
// and writes the whole line to one sink in a single Write under a mutex, so
// lines from concurrent goroutines never interleave.
//
//	l := lvlog.New(os.Stderr, lvlog.Options{Color: true, LineNumber: true})
//	l.Info("listening on %s\n", addr)
//
// Bridges for zap, zerolog and log/slog live under adapter/.
package lvlog
