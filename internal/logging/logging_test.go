package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelWarn, &buf)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("levels below warn should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] shown") || !strings.Contains(out, "[ERROR] also shown") {
		t.Errorf("warn and error should pass:\n%s", out)
	}
}

func TestWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf).WithPrefix("ephem")

	log.Info("cache hit for %s", "moon")

	if !strings.Contains(buf.String(), "[INFO] ephem: cache hit for moon") {
		t.Errorf("prefix missing: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelError, &buf)

	log.Info("before")
	log.SetLevel(LevelDebug)
	log.Debug("after")

	if strings.Contains(buf.String(), "before") {
		t.Error("info leaked through error level")
	}
	if !strings.Contains(buf.String(), "after") {
		t.Error("debug should pass after SetLevel")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tc := range tests {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nobody hears this")
}
