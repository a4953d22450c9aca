package ephem

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-skyplan/internal/astro"
)

// planetElements holds Keplerian mean elements at J2000 and their rates per
// Julian century, valid 1800-2050 (Standish, JPL approximate ephemerides).
// Angles are degrees, the semi-major axis is AU.
type planetElements struct {
	a, aRate          float64 // semi-major axis
	e, eRate          float64 // eccentricity
	incl, inclRate    float64 // inclination to the ecliptic
	meanLon, lonRate  float64 // mean longitude
	periLon, periRate float64 // longitude of perihelion
	node, nodeRate    float64 // longitude of the ascending node
}

var planetTable = map[string]planetElements{
	"mercury": {
		0.38709927, 0.00000037,
		0.20563593, 0.00001906,
		7.00497902, -0.00594749,
		252.25032350, 149472.67411175,
		77.45779628, 0.16047689,
		48.33076593, -0.12534081,
	},
	"venus": {
		0.72333566, 0.00000390,
		0.00677672, -0.00004107,
		3.39467605, -0.00078890,
		181.97909950, 58517.81538729,
		131.60246718, 0.00268329,
		76.67984255, -0.27769418,
	},
	"mars": {
		1.52371034, 0.00001847,
		0.09339410, 0.00007882,
		1.84969142, -0.00813131,
		-4.55343205, 19140.30268499,
		-23.94362959, 0.44441088,
		49.55953891, -0.29257343,
	},
	"jupiter": {
		5.20288700, -0.00011607,
		0.04838624, -0.00013253,
		1.30439695, -0.00183714,
		34.39644051, 3034.74612775,
		14.72847983, 0.21252668,
		100.47390909, 0.20469106,
	},
	"saturn": {
		9.53667594, -0.00125060,
		0.05386179, -0.00050991,
		2.48599187, 0.00193609,
		49.95424423, 1222.49362201,
		92.59887831, -0.41897216,
		113.66242448, -0.28867794,
	},
	"uranus": {
		19.18916464, -0.00196176,
		0.04725744, -0.00004397,
		0.77263783, -0.00242939,
		313.23810451, 428.48202785,
		170.95427630, 0.40805281,
		74.01692503, 0.04240589,
	},
	"neptune": {
		30.06992276, 0.00026291,
		0.00859048, 0.00005105,
		1.77004347, 0.00035372,
		-55.12002969, 218.45945325,
		44.96476227, -0.32241464,
		131.78422574, -0.00508664,
	},
}

// earthMoonBary is the Earth-Moon barycenter, used as the observer origin
// for geocentric planet positions. The barycenter sits ~4700 km from the
// Earth center, well under the accuracy of the mean elements.
var earthMoonBary = planetElements{
	1.00000261, 0.00000562,
	0.01671123, -0.00004392,
	-0.00001531, -0.01294668,
	100.46457166, 35999.37244981,
	102.93768193, 0.32327364,
	0.0, 0.0,
}

// planetPosition returns the geometric geocentric ICRS position of a planet
// with its distance in kilometers. No light-time correction is applied;
// errors stay within a few arcminutes inside 1800-2050.
func planetPosition(name string, t time.Time) (astro.Coord, error) {
	el, ok := planetTable[name]
	if !ok {
		return astro.Coord{}, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}

	T := astro.JulianCenturies(t)

	planet := heliocentricEcliptic(el, T)
	earth := heliocentricEcliptic(earthMoonBary, T)

	// Geocentric ecliptic vector, AU
	geo := planet.Sub(earth)

	eq := astro.EclipticToEquatorial(geo)
	ra, dec := astro.UnitVecToRADec(eq)
	distKm := astro.AUToKm(geo.Norm())

	return astro.ICRSCoordWithDistance(ra, dec, distKm), nil
}

// heliocentricEcliptic computes the J2000 ecliptic position in AU from mean
// elements at T Julian centuries past J2000.0.
func heliocentricEcliptic(el planetElements, T float64) astro.Vec3 {
	a := el.a + el.aRate*T
	e := el.e + el.eRate*T
	incl := deg2rad(el.incl + el.inclRate*T)
	meanLon := el.meanLon + el.lonRate*T
	periLon := el.periLon + el.periRate*T
	node := el.node + el.nodeRate*T

	// Argument of perihelion and mean anomaly, degrees
	argPeri := deg2rad(periLon - node)
	m := math.Mod(meanLon-periLon, 360)
	if m > 180 {
		m -= 360
	} else if m < -180 {
		m += 360
	}

	// Eccentric anomaly, radians
	E := solveKepler(m, e)

	// Position in the orbital plane, AU
	xOrb := a * (math.Cos(E) - e)
	yOrb := a * math.Sqrt(1-e*e) * math.Sin(E)

	// Rotate through argument of perihelion, inclination, and node
	// into J2000 ecliptic coordinates.
	cosW, sinW := math.Cos(argPeri), math.Sin(argPeri)
	cosO, sinO := math.Cos(deg2rad(node)), math.Sin(deg2rad(node))
	cosI, sinI := math.Cos(incl), math.Sin(incl)

	return astro.Vec3{
		X: (cosW*cosO-sinW*sinO*cosI)*xOrb + (-sinW*cosO-cosW*sinO*cosI)*yOrb,
		Y: (cosW*sinO+sinW*cosO*cosI)*xOrb + (-sinW*sinO+cosW*cosO*cosI)*yOrb,
		Z: (sinW*sinI)*xOrb + (cosW*sinI)*yOrb,
	}
}

// solveKepler solves Kepler's equation M = E - e sin E for the eccentric
// anomaly. The mean anomaly is in degrees; the result is in radians.
// Newton's iteration converges in a few steps at planetary eccentricities.
func solveKepler(mDeg, e float64) float64 {
	// e expressed in degrees for the iteration
	eStar := 57.29578 * e

	E := mDeg + eStar*math.Sin(deg2rad(mDeg))
	for i := 0; i < 8; i++ {
		dM := mDeg - (E - eStar*math.Sin(deg2rad(E)))
		dE := dM / (1 - e*math.Cos(deg2rad(E)))
		E += dE
		if math.Abs(dE) < 1e-7 {
			break
		}
	}
	return deg2rad(E)
}

// eclipticToVec converts ecliptic spherical coordinates (degrees) to a
// Cartesian vector in the same distance units as r.
func eclipticToVec(lonDeg, latDeg, r float64) astro.Vec3 {
	lon := deg2rad(lonDeg)
	lat := deg2rad(latDeg)
	return astro.Vec3{
		X: r * math.Cos(lat) * math.Cos(lon),
		Y: r * math.Cos(lat) * math.Sin(lon),
		Z: r * math.Sin(lat),
	}
}

// generalPrecession is the accumulated general precession in ecliptic
// longitude, degrees per Julian century. Subtracting generalPrecession*T
// moves an equinox-of-date longitude back to J2000.
const generalPrecession = 1.3969713

func deg2rad(deg float64) float64 { return deg * math.Pi / 180 }

func norm360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
