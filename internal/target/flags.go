package target

import (
	"time"

	"github.com/litescript/ls-skyplan/internal/ephem"
)

// SpecialObjectFlag marks bodies whose sky position drifts against the
// stars fast enough that callers should refresh on a schedule. The flag
// only carries the drift constant; nothing in the resolver consumes it.
type SpecialObjectFlag int

const (
	// SunFlag marks the sun.
	SunFlag SpecialObjectFlag = iota

	// MoonFlag marks the moon.
	MoonFlag
)

// String implements fmt.Stringer.
func (f SpecialObjectFlag) String() string {
	switch f {
	case SunFlag:
		return "sun"
	case MoonFlag:
		return "moon"
	default:
		return "unknown"
	}
}

// ApproxSiderealDrift returns roughly how long the body takes to move
// appreciably against the sidereal background. The sun covers about a
// degree per day, the moon about thirteen.
func (f SpecialObjectFlag) ApproxSiderealDrift() time.Duration {
	switch f {
	case SunFlag:
		return 5 * time.Minute
	case MoonFlag:
		return 60 * time.Minute
	default:
		return 0
	}
}

// FlagFor maps an ephemeris body key (including aliases like "sol") to
// its special-object flag. Bodies without a flag return false.
func FlagFor(body string) (SpecialObjectFlag, bool) {
	info, ok := ephem.BodyByName(body)
	if !ok {
		return 0, false
	}
	switch info.Name {
	case "sun":
		return SunFlag, true
	case "moon":
		return MoonFlag, true
	default:
		return 0, false
	}
}

// DriftFor returns the approximate sidereal drift window for a body.
// Its signature matches ephem.TTLFunc so it can drive cache expiry.
func DriftFor(body string) (time.Duration, bool) {
	f, ok := FlagFor(body)
	if !ok {
		return 0, false
	}
	return f.ApproxSiderealDrift(), true
}
