// Package astro provides celestial coordinate types, reference frames, and sky math.
package astro

import (
	"math"
	"time"
)

// Coord is a single sky position expressed in a reference frame.
// Angles are degrees. The distance is optional: a Coord without one is a
// direction on the unit sphere.
type Coord struct {
	Frame  Frame
	LonDeg float64 // longitudinal angle: RA, galactic l, or azimuth
	LatDeg float64 // latitudinal angle: Dec, galactic b, or altitude

	// Distance (optional, e.g. for solar system bodies)
	DistKm  float64
	HasDist bool
}

// NewCoord builds a coordinate in the given frame.
func NewCoord(f Frame, lonDeg, latDeg float64) Coord {
	return Coord{Frame: f, LonDeg: lonDeg, LatDeg: latDeg}
}

// NewCoordWithDistance builds a coordinate carrying a distance in kilometers.
func NewCoordWithDistance(f Frame, lonDeg, latDeg, distKm float64) Coord {
	return Coord{Frame: f, LonDeg: lonDeg, LatDeg: latDeg, DistKm: distKm, HasDist: true}
}

// ICRSCoord builds an ICRS (J2000 equatorial) coordinate.
func ICRSCoord(raDeg, decDeg float64) Coord {
	return NewCoord(ICRS{}, raDeg, decDeg)
}

// ICRSCoordWithDistance builds an ICRS coordinate with a distance in kilometers.
func ICRSCoordWithDistance(raDeg, decDeg, distKm float64) Coord {
	return NewCoordWithDistance(ICRS{}, raDeg, decDeg, distKm)
}

// UnitSphere reports whether the coordinate is a bare direction without a distance.
func (c Coord) UnitSphere() bool {
	return !c.HasDist
}

// Transform converts the coordinate into another frame.
// Transforms are direction-only: any distance rides along unchanged.
// The receiver must have been built with a frame (all constructors do).
func (c Coord) Transform(to Frame) Coord {
	out := c
	out.Frame = to
	if c.Frame.Equivalent(to) {
		return out
	}
	ra, dec := c.Frame.toICRS(c.LonDeg, c.LatDeg)
	out.LonDeg, out.LatDeg = to.fromICRS(ra, dec)
	return out
}

// ICRS returns the coordinate converted to the ICRS frame.
func (c Coord) ICRS() Coord {
	return c.Transform(ICRS{})
}

// Observer is a ground-based observing site.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	ElevM  float64 // Elevation above sea level in meters
	Name   string  // Optional name for the site
}

// equatorialToHorizontal converts RA/Dec (degrees) to Az/Alt (degrees) for a
// given observer and time. Uses standard astronomical conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Altitude: 0° = horizon, 90° = zenith
func equatorialToHorizontal(raDeg, decDeg float64, obs Observer, t time.Time) (azDeg, altDeg float64) {
	lat := degToRad(obs.LatDeg)
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)

	lst := localSiderealTime(t, obs.LonDeg)
	lstRad := degToRad(lst)

	// Hour Angle = LST - RA
	ha := lstRad - ra

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp1(sinAlt))

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	az := math.Acos(clamp1(cosAz))

	// Positive hour angle means the object is west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return radToDeg(az), radToDeg(alt)
}

// horizontalToEquatorial is the inverse of equatorialToHorizontal: it converts
// Az/Alt (degrees) back to RA/Dec (degrees) for the same observer and time.
func horizontalToEquatorial(azDeg, altDeg float64, obs Observer, t time.Time) (raDeg, decDeg float64) {
	lat := degToRad(obs.LatDeg)
	az := degToRad(azDeg)
	alt := degToRad(altDeg)

	sinDec := math.Sin(alt)*math.Sin(lat) + math.Cos(alt)*math.Cos(lat)*math.Cos(az)
	dec := math.Asin(clamp1(sinDec))

	// Hour angle from the spherical triangle; atan2 settles the quadrant.
	ha := math.Atan2(
		-math.Cos(alt)*math.Sin(az),
		math.Sin(alt)*math.Cos(lat)-math.Cos(alt)*math.Sin(lat)*math.Cos(az),
	)

	lst := localSiderealTime(t, obs.LonDeg)
	raDeg = normalizeAngle360(lst - radToDeg(ha))
	decDeg = radToDeg(dec)

	return raDeg, decDeg
}

// localSiderealTime calculates the Local Sidereal Time in degrees
// for a given UTC time and observer longitude.
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime calculates GMST in degrees for a given UTC time.
// Uses the IAU formula based on Julian Date.
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := JulianDate(t)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	// GMST in degrees (IAU 1982 formula)
	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeAngle360(gmst)
}

// JulianDate calculates the Julian Date for a given time.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January/February count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5

	return jd
}

// JulianCenturies returns the count of Julian centuries elapsed since the
// J2000.0 epoch, the time argument of most analytic ephemeris series.
func JulianCenturies(t time.Time) float64 {
	return (JulianDate(t) - 2451545.0) / 36525.0
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// normalizeAngle360 normalizes an angle to 0-360 degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// clamp1 clamps a value to [-1, 1] to guard asin/acos against rounding.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
