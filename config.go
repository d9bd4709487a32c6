package lvlog

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the file/environment form of a logger setup.
//
//	level: debug
//	color: true
//	line_number: true
//	output: /var/log/app.log
type Config struct {
	Level         Level  `yaml:"level"`
	Color         bool   `yaml:"color"`
	FileName      bool   `yaml:"file_name"`
	LineNumber    bool   `yaml:"line_number"`
	Timestamp     bool   `yaml:"timestamp"`
	DoubleSpacing bool   `yaml:"double_spacing"`
	// Output is "stderr" (default), "stdout" or a file path opened for append.
	Output string `yaml:"output"`
}

// Options extracts the prefix options.
func (c Config) Options() Options {
	return Options{
		Color:         c.Color,
		FileName:      c.FileName,
		LineNumber:    c.LineNumber,
		Timestamp:     c.Timestamp,
		DoubleSpacing: c.DoubleSpacing,
	}
}

// LoadConfig reads a YAML config file. Unknown keys are rejected; an empty
// file yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "lvlog: open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrapf(err, "lvlog: parse config %s", path)
	}
	return cfg, nil
}

// Env:
//
//	LVLOG_LEVEL           : trace|debug|info|warn|error|fatal
//	LVLOG_COLOR           : bool (strconv.ParseBool)
//	LVLOG_FILENAME        : bool
//	LVLOG_LINENUMBER      : bool
//	LVLOG_TIMESTAMP       : bool
//	LVLOG_DOUBLE_SPACING  : bool
//	LVLOG_OUTPUT          : stderr|stdout|<path>
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if v := os.Getenv("LVLOG_LEVEL"); v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return Config{}, errors.WithMessage(err, "LVLOG_LEVEL")
		}
		cfg.Level = lvl
	}
	flags := []struct {
		key string
		dst *bool
	}{
		{"LVLOG_COLOR", &cfg.Color},
		{"LVLOG_FILENAME", &cfg.FileName},
		{"LVLOG_LINENUMBER", &cfg.LineNumber},
		{"LVLOG_TIMESTAMP", &cfg.Timestamp},
		{"LVLOG_DOUBLE_SPACING", &cfg.DoubleSpacing},
	}
	for _, f := range flags {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "lvlog: %s", f.key)
		}
		*f.dst = b
	}
	cfg.Output = os.Getenv("LVLOG_OUTPUT")
	return cfg, nil
}

// Open resolves Output and builds the Logger. The returned Closer closes the
// file for path outputs and is a no-op for stdout/stderr.
func (c Config) Open() (*Logger, io.Closer, error) {
	w, closer, err := openOutput(c.Output)
	if err != nil {
		return nil, nil, err
	}
	l, err := NewBuilder().
		WithSink(w).
		WithOptions(c.Options()).
		WithMinLevel(c.Level).
		Build()
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return l, closer, nil
}

func openOutput(out string) (io.Writer, io.Closer, error) {
	switch out {
	case "", "stderr":
		return os.Stderr, nopCloser{}, nil
	case "stdout", "-":
		return os.Stdout, nopCloser{}, nil
	}
	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "lvlog: open output %s", out)
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
