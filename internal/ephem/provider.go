// Package ephem provides solar system body positions from built-in analytic
// series and from the JPL Horizons service.
package ephem

import (
	"errors"
	"fmt"
	"time"

	"github.com/litescript/ls-skyplan/internal/astro"
)

// ErrUnknownBody is returned when a provider has no ephemeris for a body.
var ErrUnknownBody = errors.New("unknown solar system body")

// Provider defines the interface for body position sources.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// BodyPosition returns the ICRS position of a body, including its
	// distance, as seen from the observer at time t. A zero observer means
	// geocentric.
	BodyPosition(body string, t time.Time, obs astro.Observer) (astro.Coord, error)

	// Available returns true if this provider can supply data for the body.
	Available(body string) bool
}

// Mode represents which ephemeris source to use.
type Mode int

const (
	ModeBuiltin  Mode = iota // Use built-in analytic series (default)
	ModeHorizons             // Use JPL Horizons
	ModeAuto                 // Try Horizons, fall back to built-in
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeBuiltin:
		return "builtin"
	case ModeHorizons:
		return "horizons"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string.
func ParseMode(s string) Mode {
	switch s {
	case "builtin":
		return ModeBuiltin
	case "horizons":
		return ModeHorizons
	case "auto":
		return ModeAuto
	default:
		return ModeAuto
	}
}

// Fallback chains providers: each query walks the list in order and returns
// the first successful answer.
type Fallback struct {
	providers []Provider
}

// NewFallback builds a fallback chain from the given providers.
func NewFallback(providers ...Provider) *Fallback {
	return &Fallback{providers: providers}
}

// Name implements Provider.
func (f *Fallback) Name() string { return "auto" }

// BodyPosition implements Provider. The error from the last attempted
// provider wins when every source fails.
func (f *Fallback) BodyPosition(body string, t time.Time, obs astro.Observer) (astro.Coord, error) {
	var lastErr error
	for _, p := range f.providers {
		if !p.Available(body) {
			continue
		}
		coord, err := p.BodyPosition(body, t, obs)
		if err == nil {
			return coord, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return astro.Coord{}, lastErr
	}
	return astro.Coord{}, fmt.Errorf("%w: %q", ErrUnknownBody, body)
}

// Available implements Provider.
func (f *Fallback) Available(body string) bool {
	for _, p := range f.providers {
		if p.Available(body) {
			return true
		}
	}
	return false
}
