package ephem

import (
	"errors"
	"testing"
	"time"

	"github.com/litescript/ls-skyplan/internal/astro"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"builtin", ModeBuiltin},
		{"horizons", ModeHorizons},
		{"auto", ModeAuto},
		{"", ModeAuto},        // default
		{"invalid", ModeAuto}, // default for unknown
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseMode(tc.input)
			if got != tc.expected {
				t.Errorf("ParseMode(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeBuiltin, "builtin"},
		{ModeHorizons, "horizons"},
		{ModeAuto, "auto"},
		{Mode(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			got := tc.mode.String()
			if got != tc.expected {
				t.Errorf("Mode(%d).String() = %q, want %q", tc.mode, got, tc.expected)
			}
		})
	}
}

// stubProvider answers a fixed coordinate for one body and fails for
// everything else.
type stubProvider struct {
	name  string
	body  string
	coord astro.Coord
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Available(body string) bool {
	return normalizeBody(body) == s.body
}

func (s *stubProvider) BodyPosition(body string, t time.Time, obs astro.Observer) (astro.Coord, error) {
	s.calls++
	if s.err != nil {
		return astro.Coord{}, s.err
	}
	return s.coord, nil
}

func TestFallback_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "primary", body: "mars", coord: astro.ICRSCoord(10, 20)}
	second := &stubProvider{name: "backup", body: "mars", coord: astro.ICRSCoord(30, 40)}
	fb := NewFallback(first, second)

	got, err := fb.BodyPosition("mars", time.Now(), astro.Observer{})
	if err != nil {
		t.Fatalf("BodyPosition failed: %v", err)
	}
	if got.LonDeg != 10 {
		t.Errorf("expected the first provider's answer, got RA=%v", got.LonDeg)
	}
	if second.calls != 0 {
		t.Errorf("backup provider was queried %d times", second.calls)
	}
}

func TestFallback_SkipsFailingProvider(t *testing.T) {
	boom := errors.New("network down")
	first := &stubProvider{name: "primary", body: "mars", err: boom}
	second := &stubProvider{name: "backup", body: "mars", coord: astro.ICRSCoord(30, 40)}
	fb := NewFallback(first, second)

	got, err := fb.BodyPosition("mars", time.Now(), astro.Observer{})
	if err != nil {
		t.Fatalf("BodyPosition failed: %v", err)
	}
	if got.LonDeg != 30 {
		t.Errorf("expected the backup provider's answer, got RA=%v", got.LonDeg)
	}
}

func TestFallback_UnknownBody(t *testing.T) {
	first := &stubProvider{name: "primary", body: "mars"}
	fb := NewFallback(first)

	_, err := fb.BodyPosition("vulcan", time.Now(), astro.Observer{})
	if !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}

	if fb.Available("vulcan") {
		t.Error("Available(vulcan) should be false")
	}
	if !fb.Available("mars") {
		t.Error("Available(mars) should be true")
	}
}

func TestFallback_LastErrorWins(t *testing.T) {
	firstErr := errors.New("first failure")
	lastErr := errors.New("last failure")
	fb := NewFallback(
		&stubProvider{name: "a", body: "mars", err: firstErr},
		&stubProvider{name: "b", body: "mars", err: lastErr},
	)

	_, err := fb.BodyPosition("mars", time.Now(), astro.Observer{})
	if !errors.Is(err, lastErr) {
		t.Errorf("expected the last provider's error, got %v", err)
	}
}
