package astro

import (
	"math"
	"time"
)

// Frame identifies a celestial reference frame and carries the conversions to
// and from ICRS. The set of frames is closed; callers use the implementations
// in this package.
type Frame interface {
	// Name returns the lowercase frame identifier ("icrs", "galactic", "altaz").
	Name() string

	// AxisNames returns the labels of the longitudinal and latitudinal angles,
	// e.g. ("ra", "dec") for ICRS.
	AxisNames() (lon, lat string)

	// Equivalent reports whether coordinates in the other frame are directly
	// comparable to coordinates in this one without conversion.
	Equivalent(other Frame) bool

	toICRS(lonDeg, latDeg float64) (raDeg, decDeg float64)
	fromICRS(raDeg, decDeg float64) (lonDeg, latDeg float64)
}

// ICRS is the International Celestial Reference System, essentially J2000
// equatorial coordinates: right ascension and declination.
type ICRS struct{}

func (ICRS) Name() string { return "icrs" }

func (ICRS) AxisNames() (string, string) { return "ra", "dec" }

func (ICRS) Equivalent(other Frame) bool {
	_, ok := other.(ICRS)
	return ok
}

func (ICRS) toICRS(lonDeg, latDeg float64) (float64, float64) { return lonDeg, latDeg }

func (ICRS) fromICRS(raDeg, decDeg float64) (float64, float64) { return raDeg, decDeg }

// North galactic pole and node constants for the J2000 galactic frame,
// per the IAU 1958 definition carried over to ICRS.
const (
	galNorthPoleRA  = 192.85948 // RA of the north galactic pole, degrees
	galNorthPoleDec = 27.12825  // Dec of the north galactic pole, degrees
	galLonOfNCP     = 122.93192 // galactic longitude of the north celestial pole, degrees
)

// Galactic is the IAU 1958 galactic coordinate system: longitude l along the
// galactic plane and latitude b out of it.
type Galactic struct{}

func (Galactic) Name() string { return "galactic" }

func (Galactic) AxisNames() (string, string) { return "l", "b" }

func (Galactic) Equivalent(other Frame) bool {
	_, ok := other.(Galactic)
	return ok
}

func (Galactic) toICRS(lonDeg, latDeg float64) (float64, float64) {
	l := degToRad(lonDeg)
	b := degToRad(latDeg)
	poleRA := degToRad(galNorthPoleRA)
	poleDec := degToRad(galNorthPoleDec)
	dl := degToRad(galLonOfNCP) - l

	sinDec := math.Sin(poleDec)*math.Sin(b) + math.Cos(poleDec)*math.Cos(b)*math.Cos(dl)
	dec := math.Asin(clamp1(sinDec))

	ra := poleRA + math.Atan2(
		math.Cos(b)*math.Sin(dl),
		math.Cos(poleDec)*math.Sin(b)-math.Sin(poleDec)*math.Cos(b)*math.Cos(dl),
	)

	return normalizeAngle360(radToDeg(ra)), radToDeg(dec)
}

func (Galactic) fromICRS(raDeg, decDeg float64) (float64, float64) {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)
	poleRA := degToRad(galNorthPoleRA)
	poleDec := degToRad(galNorthPoleDec)
	da := ra - poleRA

	sinB := math.Sin(poleDec)*math.Sin(dec) + math.Cos(poleDec)*math.Cos(dec)*math.Cos(da)
	b := math.Asin(clamp1(sinB))

	l := degToRad(galLonOfNCP) - math.Atan2(
		math.Cos(dec)*math.Sin(da),
		math.Cos(poleDec)*math.Sin(dec)-math.Sin(poleDec)*math.Cos(dec)*math.Cos(da),
	)

	return normalizeAngle360(radToDeg(l)), radToDeg(b)
}

// AltAz is the topocentric horizontal frame for one site at one instant:
// azimuth measured from north through east, altitude above the horizon.
type AltAz struct {
	Obstime time.Time
	Site    Observer
}

func (AltAz) Name() string { return "altaz" }

func (AltAz) AxisNames() (string, string) { return "az", "alt" }

// Equivalent compares the site by latitude and longitude only; elevation does
// not enter the direction transform.
func (f AltAz) Equivalent(other Frame) bool {
	o, ok := other.(AltAz)
	if !ok {
		return false
	}
	return f.Obstime.Equal(o.Obstime) &&
		f.Site.LatDeg == o.Site.LatDeg &&
		f.Site.LonDeg == o.Site.LonDeg
}

func (f AltAz) toICRS(lonDeg, latDeg float64) (float64, float64) {
	return horizontalToEquatorial(lonDeg, latDeg, f.Site, f.Obstime)
}

func (f AltAz) fromICRS(raDeg, decDeg float64) (float64, float64) {
	return equatorialToHorizontal(raDeg, decDeg, f.Site, f.Obstime)
}
