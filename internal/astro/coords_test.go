package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected float64
		tol      float64
	}{
		{
			name:     "J2000 epoch",
			time:     time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 2451545.0,
			tol:      0.0001,
		},
		{
			name:     "Unix epoch",
			time:     time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2440587.5,
			tol:      0.0001,
		},
		{
			name:     "Known date 2024-01-01 00:00 UTC",
			time:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2460310.5,
			tol:      0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDate(tt.time)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("JulianDate() = %v, want %v (±%v)", got, tt.expected, tt.tol)
			}
		})
	}
}

func TestGreenwichMeanSiderealTime(t *testing.T) {
	// At J2000 epoch (2000-01-01 12:00 UTC), GMST should be approximately 280.46°
	t2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	gmst := greenwichMeanSiderealTime(t2000)

	// GMST at J2000 should be very close to 280.46°
	if math.Abs(gmst-280.46) > 0.1 {
		t.Errorf("GMST at J2000 = %v, want ~280.46", gmst)
	}

	// GMST should be in range 0-360
	if gmst < 0 || gmst >= 360 {
		t.Errorf("GMST out of range: %v", gmst)
	}
}

func TestLocalSiderealTime(t *testing.T) {
	// LST = GMST + longitude
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// At longitude 0 (Greenwich), LST should equal GMST
	gmst := greenwichMeanSiderealTime(testTime)
	lst0 := localSiderealTime(testTime, 0)
	if math.Abs(lst0-gmst) > 0.001 {
		t.Errorf("LST at lon=0 should equal GMST: got %v, want %v", lst0, gmst)
	}

	// At longitude +90° (east), LST should be GMST + 90°
	lst90 := localSiderealTime(testTime, 90)
	expected90 := math.Mod(gmst+90, 360)
	if math.Abs(lst90-expected90) > 0.001 {
		t.Errorf("LST at lon=90 = %v, want %v", lst90, expected90)
	}

	// LST should always be in 0-360 range
	for lon := -180.0; lon <= 180; lon += 30 {
		lst := localSiderealTime(testTime, lon)
		if lst < 0 || lst >= 360 {
			t.Errorf("LST at lon=%v out of range: %v", lon, lst)
		}
	}
}

func TestTransformToAltAz_Polaris(t *testing.T) {
	// Polaris is approximately at RA=37.95°, Dec=89.26° (very close to NCP)
	// From northern latitudes it should always be up, with Alt ≈ latitude.

	polaris := ICRSCoord(37.95, 89.26)

	// Observer at 35°N (roughly Goldstone latitude)
	site := Observer{
		LatDeg: 35.0,
		LonDeg: -117.0, // west longitude
	}

	testTime := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	result := polaris.Transform(AltAz{Obstime: testTime, Site: site})

	// Polaris altitude should be approximately equal to observer latitude (±5°)
	if math.Abs(result.LatDeg-site.LatDeg) > 5 {
		t.Errorf("Polaris altitude = %v°, expected ~%v° (latitude)", result.LatDeg, site.LatDeg)
	}

	// Polaris should always be visible from the northern hemisphere
	if result.LatDeg < 0 {
		t.Errorf("Polaris should be visible from 35°N, got alt=%v°", result.LatDeg)
	}
}

func TestTransformToAltAz_ZenithStar(t *testing.T) {
	// A star at the zenith has Dec = observer latitude and HA = 0
	// This means RA = LST at that moment

	site := Observer{
		LatDeg: 35.0,
		LonDeg: -117.0,
	}

	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	lst := localSiderealTime(testTime, site.LonDeg)

	// Star at zenith: Dec = lat, RA = LST
	zenithStar := ICRSCoord(lst, site.LatDeg)
	result := zenithStar.Transform(AltAz{Obstime: testTime, Site: site})

	// Altitude should be ~90° (zenith)
	if math.Abs(result.LatDeg-90) > 1 {
		t.Errorf("Zenith star altitude = %v°, expected ~90°", result.LatDeg)
	}
}

func TestTransformToAltAz_SouthernStar(t *testing.T) {
	// A star at Dec = -60° should not be visible from 35°N
	// (it's always below the horizon)

	southernStar := ICRSCoord(0, -60)

	site := Observer{
		LatDeg: 35.0,
		LonDeg: -117.0,
	}

	// Test at multiple times
	for hour := 0; hour < 24; hour += 6 {
		testTime := time.Date(2024, 6, 15, hour, 0, 0, 0, time.UTC)
		result := southernStar.Transform(AltAz{Obstime: testTime, Site: site})

		// Star at -60° should never rise above horizon from 35°N
		// Max elevation = 90 - lat + dec = 90 - 35 + (-60) = -5°
		if result.LatDeg > 0 {
			t.Errorf("Star at Dec=-60° visible from 35°N at hour %d: alt=%v°", hour, result.LatDeg)
		}
	}
}

func TestTransform_PreservesDistance(t *testing.T) {
	star := ICRSCoordWithDistance(100, 20, 1.5e8) // ~1 AU

	site := Observer{LatDeg: 35, LonDeg: -117}
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	result := star.Transform(AltAz{Obstime: testTime, Site: site})

	if !result.HasDist || result.DistKm != star.DistKm {
		t.Errorf("distance not preserved: got %v (has=%v), want %v", result.DistKm, result.HasDist, star.DistKm)
	}

	// A bare direction stays a bare direction.
	dir := ICRSCoord(100, 20).Transform(Galactic{})
	if !dir.UnitSphere() {
		t.Error("direction-only coordinate gained a distance in transform")
	}
}

func TestTransform_RoundTripAltAz(t *testing.T) {
	// ICRS -> AltAz -> ICRS should come back to the same direction.
	site := Observer{LatDeg: 35, LonDeg: -117}
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	frame := AltAz{Obstime: testTime, Site: site}

	tests := []struct {
		name    string
		ra, dec float64
	}{
		{"mid-sky", 120, 30},
		{"near pole", 37.95, 89.26},
		{"southern", 200, -40},
		{"equator", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := ICRSCoord(tt.ra, tt.dec).Transform(frame).ICRS()

			if math.Abs(back.LatDeg-tt.dec) > 1e-6 {
				t.Errorf("dec round trip: got %v, want %v", back.LatDeg, tt.dec)
			}
			dRA := math.Abs(back.LonDeg - tt.ra)
			if dRA > 180 {
				dRA = 360 - dRA
			}
			// RA wobbles more near the pole where it is degenerate.
			tol := 1e-6 / math.Cos(degToRad(tt.dec))
			if dRA > tol {
				t.Errorf("ra round trip: got %v, want %v", back.LonDeg, tt.ra)
			}
		})
	}
}

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		got := degToRad(tt.deg)
		if math.Abs(got-tt.rad) > 1e-10 {
			t.Errorf("degToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
	}
}

func TestRadToDeg(t *testing.T) {
	tests := []struct {
		rad float64
		deg float64
	}{
		{0, 0},
		{math.Pi / 2, 90},
		{math.Pi, 180},
		{2 * math.Pi, 360},
	}

	for _, tt := range tests {
		got := radToDeg(tt.rad)
		if math.Abs(got-tt.deg) > 1e-10 {
			t.Errorf("radToDeg(%v) = %v, want %v", tt.rad, got, tt.deg)
		}
	}
}

func TestTransformToAltAz_AzimuthRange(t *testing.T) {
	// Azimuth must always land in 0-360
	site := Observer{LatDeg: 35, LonDeg: -117}
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	frame := AltAz{Obstime: testTime, Site: site}

	for ra := 0.0; ra < 360; ra += 30 {
		for dec := -80.0; dec <= 80; dec += 20 {
			result := ICRSCoord(ra, dec).Transform(frame)

			if result.LonDeg < 0 || result.LonDeg >= 360 {
				t.Errorf("azimuth out of range for RA=%v, Dec=%v: az=%v",
					ra, dec, result.LonDeg)
			}
		}
	}
}
