package lvlog

import (
	"errors"
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	lv := Levels()
	for i := 1; i < len(lv); i++ {
		if !(lv[i-1] < lv[i]) {
			t.Fatalf("levels not ascending at %d: %v", i, lv)
		}
	}
}

func TestShouldLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level, threshold Level
		want             bool
	}{
		{LevelTrace, LevelTrace, true},
		{LevelTrace, LevelDebug, false},
		{LevelInfo, LevelInfo, true},
		{LevelWarn, LevelInfo, true},
		{LevelInfo, LevelWarn, false},
		{LevelFatal, LevelError, true},
		{LevelError, LevelFatal, false},
	}
	for _, tt := range tests {
		if got := ShouldLog(tt.level, tt.threshold); got != tt.want {
			t.Fatalf("ShouldLog(%s, %s) = %v, want %v", tt.level, tt.threshold, got, tt.want)
		}
	}
}

func TestLevelNamesAndColors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		name  string
		color Color
	}{
		{LevelTrace, "TRACE", Blue},
		{LevelDebug, "DEBUG", Cyan},
		{LevelInfo, "INFO", Green},
		{LevelWarn, "WARN", Yellow},
		{LevelError, "ERROR", Red},
		{LevelFatal, "FATAL", Magenta},
		{Level(99), "UNKNOWN", White},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Fatalf("String(%d) = %q, want %q", int(tt.level), got, tt.name)
		}
		if got := tt.level.Color(); got != tt.color {
			t.Fatalf("Color(%s) = %q, want %q", tt.name, got, tt.color)
		}
	}
}

func TestColorCodes(t *testing.T) {
	t.Parallel()

	want := map[Color]string{
		Red:     "\x1b[31m",
		Green:   "\x1b[32m",
		Yellow:  "\x1b[33m",
		Blue:    "\x1b[34m",
		Magenta: "\x1b[35m",
		Cyan:    "\x1b[36m",
		White:   "\x1b[37m",
		Reset:   "\x1b[0m",
		Bright:  "\x1b[1m",
	}
	for c, code := range want {
		if string(c) != code {
			t.Fatalf("color %q != %q", string(c), code)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{"", LevelInfo},
		{" Info ", LevelInfo},
		{"warning", LevelWarn},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"Fatal", LevelFatal},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestLevelText(t *testing.T) {
	t.Parallel()

	for _, lv := range Levels() {
		b, err := lv.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", lv, err)
		}
		var back Level
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if back != lv {
			t.Fatalf("text round trip %s -> %q -> %s", lv, b, back)
		}
	}
	if _, err := Level(3).MarshalText(); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel for Level(3), got %v", err)
	}
}
