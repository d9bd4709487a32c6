package lvlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	p := writeFile(t, "log.yaml", `
level: debug
color: true
file_name: true
line_number: true
timestamp: true
double_spacing: true
output: stdout
`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Level:         LevelDebug,
		Color:         true,
		FileName:      true,
		LineNumber:    true,
		Timestamp:     true,
		DoubleSpacing: true,
		Output:        "stdout",
	}
	if cfg != want {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(writeFile(t, "unknown.yaml", "colour: true\n")); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, err := LoadConfig(writeFile(t, "level.yaml", "level: loud\n")); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LVLOG_LEVEL", "WARN")
	t.Setenv("LVLOG_COLOR", "1")
	t.Setenv("LVLOG_FILENAME", "false")
	t.Setenv("LVLOG_LINENUMBER", "true")
	t.Setenv("LVLOG_TIMESTAMP", "t")
	t.Setenv("LVLOG_DOUBLE_SPACING", "")
	t.Setenv("LVLOG_OUTPUT", "stdout")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("env: %v", err)
	}
	want := Config{Level: LevelWarn, Color: true, LineNumber: true, Timestamp: true, Output: "stdout"}
	if cfg != want {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestConfigFromEnvErrors(t *testing.T) {
	t.Setenv("LVLOG_LEVEL", "loud")
	if _, err := ConfigFromEnv(); err == nil || !strings.Contains(err.Error(), "LVLOG_LEVEL") {
		t.Fatalf("expected LVLOG_LEVEL error, got %v", err)
	}

	t.Setenv("LVLOG_LEVEL", "")
	t.Setenv("LVLOG_TIMESTAMP", "sometimes")
	if _, err := ConfigFromEnv(); err == nil || !strings.Contains(err.Error(), "LVLOG_TIMESTAMP") {
		t.Fatalf("expected LVLOG_TIMESTAMP error, got %v", err)
	}
}

func TestConfigOpenFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "app.log")
	cfg := Config{Level: LevelWarn, Output: out}
	l, closer, err := cfg.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	l.Info("skipped\n")
	l.Error("kept\n")
	if err := l.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(b), "[ERROR]: kept\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestConfigOpenAppends(t *testing.T) {
	t.Parallel()

	out := writeFile(t, "app.log", "previous\n")
	l, closer, err := Config{Output: out}.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	l.Info("next\n")
	_ = closer.Close()

	b, _ := os.ReadFile(out)
	if got, want := string(b), "previous\n[INFO]: next\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestConfigOpenStdStreams(t *testing.T) {
	t.Parallel()

	for _, out := range []string{"", "stderr", "stdout", "-"} {
		l, closer, err := Config{Output: out}.Open()
		if err != nil {
			t.Fatalf("open %q: %v", out, err)
		}
		if l == nil {
			t.Fatalf("open %q: nil logger", out)
		}
		if err := closer.Close(); err != nil {
			t.Fatalf("close %q: %v", out, err)
		}
	}

	if _, _, err := (Config{Output: filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")}).Open(); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
