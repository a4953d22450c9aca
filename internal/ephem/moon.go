package ephem

import (
	"math"
	"time"

	"github.com/litescript/ls-skyplan/internal/astro"
)

// moonTerm is one periodic term of the truncated lunar theory. The argument
// is d*D + m*M + mp*Mp + f*F over the fundamental lunar arguments.
type moonTerm struct {
	d, m, mp, f int
	sinL        float64 // longitude coefficient, 1e-6 degrees
	cosR        float64 // distance coefficient, 1e-3 km
}

// moonLonDist holds the largest longitude and distance terms of the lunar
// theory (ELP-2000/82 as tabulated by Meeus). Fourteen terms keep the
// worst-case longitude error near 0.05 degrees over 1900-2100.
var moonLonDist = []moonTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
}

// moonLatTerm is one periodic latitude term.
type moonLatTerm struct {
	d, m, mp, f int
	sinB        float64 // latitude coefficient, 1e-6 degrees
}

var moonLat = []moonLatTerm{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
}

// moonPosition returns the geocentric ICRS position of the Moon with its
// distance in kilometers.
func moonPosition(t time.Time) astro.Coord {
	T := astro.JulianCenturies(t)

	// Fundamental arguments, degrees
	Lp := norm360(218.3164477 + 481267.88123421*T - 0.0015786*T*T + T*T*T/538841) // mean longitude
	D := norm360(297.8501921 + 445267.1114034*T - 0.0018819*T*T + T*T*T/545868)   // mean elongation
	M := norm360(357.5291092 + 35999.0502909*T - 0.0001536*T*T)                   // solar mean anomaly
	Mp := norm360(134.9633964 + 477198.8675055*T + 0.0087414*T*T + T*T*T/69699)   // lunar mean anomaly
	F := norm360(93.2720950 + 483202.0175233*T - 0.0036539*T*T)                   // argument of latitude

	// Damping factor for terms involving the solar anomaly
	E := 1 - 0.002516*T - 0.0000074*T*T

	var sumL, sumR float64
	for _, term := range moonLonDist {
		arg := deg2rad(float64(term.d)*D + float64(term.m)*M + float64(term.mp)*Mp + float64(term.f)*F)
		e := 1.0
		if term.m == 1 || term.m == -1 {
			e = E
		}
		sumL += term.sinL * e * math.Sin(arg)
		sumR += term.cosR * e * math.Cos(arg)
	}

	var sumB float64
	for _, term := range moonLat {
		arg := deg2rad(float64(term.d)*D + float64(term.m)*M + float64(term.mp)*Mp + float64(term.f)*F)
		sumB += term.sinB * math.Sin(arg)
	}

	// The series yields equinox-of-date longitude; shift to J2000 before
	// rotating with the J2000 obliquity.
	lonDeg := Lp + sumL/1e6 - generalPrecession*T
	latDeg := sumB / 1e6
	distKm := 385000.56 + sumR/1000

	ecl := eclipticToVec(lonDeg, latDeg, distKm)
	eq := astro.EclipticToEquatorial(ecl)
	ra, dec := astro.UnitVecToRADec(eq)

	return astro.ICRSCoordWithDistance(ra, dec, distKm)
}
