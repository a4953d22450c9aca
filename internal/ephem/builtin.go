package ephem

import (
	"fmt"
	"time"

	"github.com/litescript/ls-skyplan/internal/astro"
)

// BuiltinProvider computes body positions from analytic series without any
// network access: the Sun from the Astronomical Almanac low-precision
// formulas, the Moon from a truncated lunar theory, and the planets from
// Keplerian mean elements. Positions are geocentric; topocentric parallax is
// not applied, which matters most for the Moon (up to about a degree).
type BuiltinProvider struct{}

// NewBuiltin creates the built-in analytic provider.
func NewBuiltin() *BuiltinProvider {
	return &BuiltinProvider{}
}

// Name implements Provider.
func (*BuiltinProvider) Name() string {
	return "builtin"
}

// Available implements Provider.
func (*BuiltinProvider) Available(body string) bool {
	_, ok := BodyByName(body)
	return ok
}

// BodyPosition implements Provider. The observer argument is accepted for
// interface compatibility but ignored; all positions are geocentric.
func (p *BuiltinProvider) BodyPosition(body string, t time.Time, obs astro.Observer) (astro.Coord, error) {
	info, ok := BodyByName(body)
	if !ok {
		return astro.Coord{}, fmt.Errorf("%w: %q", ErrUnknownBody, body)
	}

	switch info.Kind {
	case KindSun:
		return sunPosition(t), nil
	case KindMoon:
		return moonPosition(t), nil
	default:
		return planetPosition(info.Name, t)
	}
}

// sunPosition returns the geocentric ICRS position of the Sun with its
// distance in kilometers.
func sunPosition(t time.Time) astro.Coord {
	T := astro.JulianCenturies(t)

	// Equinox-of-date longitude shifted to J2000
	lonDeg := astro.SunEclipticLongitude(t) - generalPrecession*T
	distKm := astro.AUToKm(astro.SunDistanceAU(t))

	ecl := eclipticToVec(lonDeg, 0, distKm)
	eq := astro.EclipticToEquatorial(ecl)
	ra, dec := astro.UnitVecToRADec(eq)

	return astro.ICRSCoordWithDistance(ra, dec, distKm)
}
