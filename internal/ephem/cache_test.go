package ephem

import (
	"errors"
	"testing"
	"time"

	"github.com/litescript/ls-skyplan/internal/astro"
)

func TestCache_ReusesWithinTTL(t *testing.T) {
	stub := &stubProvider{name: "stub", body: "mars", coord: astro.ICRSCoord(10, 20)}
	cache := NewCache(stub, nil)

	t0 := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	obs := astro.Observer{LatDeg: 35.0, LonDeg: -116.0}

	first, err := cache.BodyPosition("mars", t0, obs)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := cache.BodyPosition("mars", t0.Add(5*time.Minute), obs)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if stub.calls != 1 {
		t.Errorf("inner calls = %d, want 1", stub.calls)
	}
	if first != second {
		t.Errorf("cached coordinate differs: %v vs %v", first, second)
	}
}

func TestCache_ExpiresOutsideTTL(t *testing.T) {
	stub := &stubProvider{name: "stub", body: "mars", coord: astro.ICRSCoord(10, 20)}
	cache := NewCache(stub, nil)

	t0 := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	obs := astro.Observer{}

	cache.BodyPosition("mars", t0, obs)
	cache.BodyPosition("mars", t0.Add(DefaultCacheTTL+time.Minute), obs)

	if stub.calls != 2 {
		t.Errorf("inner calls = %d, want 2", stub.calls)
	}
}

func TestCache_WindowAppliesBothDirections(t *testing.T) {
	// Asking for an epoch before the cached sample should still hit as
	// long as the distance stays within the TTL.
	stub := &stubProvider{name: "stub", body: "jupiter", coord: astro.ICRSCoord(50, 5)}
	cache := NewCache(stub, nil)

	t0 := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	obs := astro.Observer{}

	cache.BodyPosition("jupiter", t0, obs)
	cache.BodyPosition("jupiter", t0.Add(-5*time.Minute), obs)
	if stub.calls != 1 {
		t.Errorf("inner calls = %d, want 1 (earlier epoch within window)", stub.calls)
	}

	cache.BodyPosition("jupiter", t0.Add(-DefaultCacheTTL-time.Minute), obs)
	if stub.calls != 2 {
		t.Errorf("inner calls = %d, want 2 (earlier epoch outside window)", stub.calls)
	}
}

func TestCache_TTLFuncOverride(t *testing.T) {
	stub := &stubProvider{name: "stub", body: "moon", coord: astro.ICRSCoord(100, -5)}
	ttlFor := func(body string) (time.Duration, bool) {
		if body == "moon" {
			return time.Minute, true
		}
		return 0, false
	}
	cache := NewCache(stub, ttlFor)

	t0 := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	obs := astro.Observer{}

	cache.BodyPosition("moon", t0, obs)
	cache.BodyPosition("moon", t0.Add(30*time.Second), obs)
	if stub.calls != 1 {
		t.Errorf("inner calls = %d, want 1 within the moon window", stub.calls)
	}

	cache.BodyPosition("moon", t0.Add(2*time.Minute), obs)
	if stub.calls != 2 {
		t.Errorf("inner calls = %d, want 2 past the moon window", stub.calls)
	}

	// A body the TTLFunc declines falls back to the default window.
	cache.BodyPosition("saturn", t0, obs)
	cache.BodyPosition("saturn", t0.Add(5*time.Minute), obs)
	if stub.calls != 3 {
		t.Errorf("inner calls = %d, want 3 (saturn uses default TTL)", stub.calls)
	}
}

func TestCache_ObserverChange(t *testing.T) {
	stub := &stubProvider{name: "stub", body: "mars", coord: astro.ICRSCoord(10, 20)}
	cache := NewCache(stub, nil)

	t0 := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	goldstone := astro.Observer{LatDeg: 35.4267, LonDeg: -116.8900}

	cache.BodyPosition("mars", t0, goldstone)

	// Tiny jitter within the match tolerance still hits.
	nearby := astro.Observer{LatDeg: 35.4300, LonDeg: -116.8950}
	cache.BodyPosition("mars", t0, nearby)
	if stub.calls != 1 {
		t.Errorf("inner calls = %d, want 1 for a nearby observer", stub.calls)
	}

	// A different site misses.
	madrid := astro.Observer{LatDeg: 40.4314, LonDeg: -4.2481}
	cache.BodyPosition("mars", t0, madrid)
	if stub.calls != 2 {
		t.Errorf("inner calls = %d, want 2 after observer change", stub.calls)
	}
}

func TestCache_Invalidate(t *testing.T) {
	stub := &stubProvider{name: "stub", body: "venus", coord: astro.ICRSCoord(200, 1)}
	cache := NewCache(stub, nil)

	t0 := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	obs := astro.Observer{}

	cache.BodyPosition("venus", t0, obs)
	cache.Invalidate("Venus") // case-insensitive
	cache.BodyPosition("venus", t0, obs)

	if stub.calls != 2 {
		t.Errorf("inner calls = %d, want 2 after Invalidate", stub.calls)
	}
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	boom := errors.New("network down")
	stub := &stubProvider{name: "stub", body: "mars", err: boom}
	cache := NewCache(stub, nil)

	t0 := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	if _, err := cache.BodyPosition("mars", t0, astro.Observer{}); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	cache.BodyPosition("mars", t0, astro.Observer{})

	if stub.calls != 2 {
		t.Errorf("inner calls = %d, want 2 (failures retry)", stub.calls)
	}
}

func TestCache_Delegates(t *testing.T) {
	stub := &stubProvider{name: "builtin", body: "mars"}
	cache := NewCache(stub, nil)

	if cache.Name() != "builtin" {
		t.Errorf("Name() = %q, want builtin", cache.Name())
	}
	if !cache.Available("mars") {
		t.Error("Available(mars) should delegate to inner provider")
	}
	if cache.Available("pluto") {
		t.Error("Available(pluto) should be false")
	}
}
