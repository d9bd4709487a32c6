package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trickstertwo/lvlog"
)

type rootFlags struct {
	level         string
	minLevel      string
	color         string
	fileName      bool
	lineNumber    bool
	timestamp     bool
	doubleSpacing bool
	output        string
	config        string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "lvlog [flags] [message...]",
		Short: "Write leveled log lines to stderr, stdout or a file",
		Long: `Writes one log line per argument list, or one per stdin line when no
arguments are given.

Settings come from --config (YAML, see lvlog.Config) and are overridden by
any flag given explicitly.

Examples:
  lvlog --level error "boo!"
  lvlog -l warn --timestamp --color always "disk at 91%"
  make 2>&1 | lvlog --min-level info --output build.log`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.level, "level", "l", "info", "level of the emitted lines")
	fl.StringVar(&f.minLevel, "min-level", "trace", "threshold; lines below it are dropped")
	fl.StringVar(&f.color, "color", "auto", "color the level tag: auto|always|never")
	fl.BoolVar(&f.fileName, "file-name", false, "print the [file:line] call site")
	fl.BoolVar(&f.lineNumber, "line-number", false, "print the [file:line] call site")
	fl.BoolVar(&f.timestamp, "timestamp", false, "prefix lines with Unix seconds")
	fl.BoolVar(&f.doubleSpacing, "double-spacing", false, "follow every line with a blank line")
	fl.StringVarP(&f.output, "output", "o", "stderr", "stderr, stdout or a file path (appended)")
	fl.StringVarP(&f.config, "config", "c", "", "YAML config file")
	return cmd
}

func run(cmd *cobra.Command, f *rootFlags, args []string) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	level, err := lvlog.ParseLevel(f.level)
	if err != nil {
		return errors.WithMessage(err, "--level")
	}

	l, closer, err := openLogger(cmd, f, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	if len(args) > 0 {
		if err := emit(l, level, strings.Join(args, " ")); err != nil {
			return err
		}
		return l.Sync()
	}

	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := emit(l, level, sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read stdin")
	}
	return l.Sync()
}

// resolveConfig layers explicitly set flags over the config file.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (lvlog.Config, error) {
	var cfg lvlog.Config
	fromFile := f.config != ""
	if fromFile {
		c, err := lvlog.LoadConfig(f.config)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}

	set := cmd.Flags().Changed
	if set("min-level") || !fromFile {
		lv, err := lvlog.ParseLevel(f.minLevel)
		if err != nil {
			return cfg, errors.WithMessage(err, "--min-level")
		}
		cfg.Level = lv
	}
	if set("file-name") || !fromFile {
		cfg.FileName = f.fileName
	}
	if set("line-number") || !fromFile {
		cfg.LineNumber = f.lineNumber
	}
	if set("timestamp") || !fromFile {
		cfg.Timestamp = f.timestamp
	}
	if set("double-spacing") || !fromFile {
		cfg.DoubleSpacing = f.doubleSpacing
	}
	if set("output") || !fromFile {
		cfg.Output = f.output
	}
	switch f.color {
	case "auto", "always", "never":
	default:
		return cfg, errors.Errorf("--color: want auto|always|never, got %q", f.color)
	}
	return cfg, nil
}

// openLogger routes stdout/stderr through the command's streams and leaves
// file outputs to Config.Open.
func openLogger(cmd *cobra.Command, f *rootFlags, cfg lvlog.Config) (*lvlog.Logger, io.Closer, error) {
	var w io.Writer
	switch cfg.Output {
	case "", "stderr":
		w = cmd.ErrOrStderr()
	case "stdout", "-":
		w = cmd.OutOrStdout()
	}

	fromFile := f.config != ""
	if cmd.Flags().Changed("color") || !fromFile {
		switch f.color {
		case "always":
			cfg.Color = true
		case "never":
			cfg.Color = false
		default:
			cfg.Color = w != nil && lvlog.IsTerminal(w)
		}
	}

	if w == nil {
		return cfg.Open()
	}
	l, err := lvlog.NewBuilder().
		WithSink(w).
		WithOptions(cfg.Options()).
		WithMinLevel(cfg.Level).
		Build()
	if err != nil {
		return nil, nil, err
	}
	return l, nopCloser{}, nil
}

func emit(l *lvlog.Logger, level lvlog.Level, msg string) error {
	err := l.LogDepth(1, level, "%s\n", msg)
	if err != nil && !errors.Is(err, lvlog.ErrCallSite) {
		return err
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
