package astro

import (
	"math"
	"testing"
)

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero", Vec3{0, 0, 0}, 0},
		{"unit x", Vec3{1, 0, 0}, 1},
		{"unit y", Vec3{0, 1, 0}, 1},
		{"unit z", Vec3{0, 0, 1}, 1},
		{"3-4-5", Vec3{3, 4, 0}, 5},
		{"negative", Vec3{-3, -4, 0}, 5},
		{"3D", Vec3{1, 2, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Norm()
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Normalized(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Vec3
	}{
		{"unit x", Vec3{5, 0, 0}, Vec3{1, 0, 0}},
		{"unit y", Vec3{0, 3, 0}, Vec3{0, 1, 0}},
		{"diagonal", Vec3{1, 1, 0}, Vec3{1 / math.Sqrt(2), 1 / math.Sqrt(2), 0}},
		{"zero", Vec3{0, 0, 0}, Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalized()
			if math.Abs(got.X-tt.want.X) > 1e-10 ||
				math.Abs(got.Y-tt.want.Y) > 1e-10 ||
				math.Abs(got.Z-tt.want.Z) > 1e-10 {
				t.Errorf("Normalized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKmToAU(t *testing.T) {
	tests := []struct {
		km     float64
		wantAU float64
		tolPct float64 // tolerance as percentage
	}{
		{AU, 1.0, 0.001},           // 1 AU in km = 1 AU
		{AU * 5.2, 5.2, 0.001},     // Jupiter distance
		{AU * 30.07, 30.07, 0.001}, // Neptune distance
		{24e9, 24e9 / AU, 0.001},   // ~160 AU (Voyager range)
	}

	for _, tt := range tests {
		got := KmToAU(tt.km)
		diff := math.Abs(got-tt.wantAU) / tt.wantAU
		if diff > tt.tolPct/100 {
			t.Errorf("KmToAU(%.0f) = %.4f, want %.4f", tt.km, got, tt.wantAU)
		}
	}
}

func TestEquatorialToEcliptic(t *testing.T) {
	// A vector along the equatorial Z-axis (north celestial pole)
	// should tilt toward positive ecliptic Y and negative ecliptic Z
	// by the obliquity angle (~23.4°)
	northPole := Vec3{0, 0, 1}
	ecl := EquatorialToEcliptic(northPole)

	// Expected: X unchanged, Y = sin(23.4°), Z = cos(23.4°)
	expectedY := math.Sin(obliquityRad)
	expectedZ := math.Cos(obliquityRad)

	if math.Abs(ecl.X) > 1e-10 {
		t.Errorf("X should be 0, got %v", ecl.X)
	}
	if math.Abs(ecl.Y-expectedY) > 1e-6 {
		t.Errorf("Y = %v, want %v", ecl.Y, expectedY)
	}
	if math.Abs(ecl.Z-expectedZ) > 1e-6 {
		t.Errorf("Z = %v, want %v", ecl.Z, expectedZ)
	}
}

func TestEclipticToEquatorial(t *testing.T) {
	// Roundtrip test
	original := Vec3{1, 2, 3}
	ecl := EquatorialToEcliptic(original)
	back := EclipticToEquatorial(ecl)

	if math.Abs(back.X-original.X) > 1e-10 ||
		math.Abs(back.Y-original.Y) > 1e-10 ||
		math.Abs(back.Z-original.Z) > 1e-10 {
		t.Errorf("Roundtrip failed: %v -> %v -> %v", original, ecl, back)
	}
}

func TestEclipticLatitude(t *testing.T) {
	tests := []struct {
		v       Vec3
		wantDeg float64
		tol     float64
	}{
		{Vec3{1, 0, 0}, 0, 0.01},
		{Vec3{0, 1, 0}, 0, 0.01},
		{Vec3{0, 0, 1}, 90, 0.01},
		{Vec3{0, 0, -1}, -90, 0.01},
		{Vec3{1, 0, 1}, 45, 0.01},
		{Vec3{1, 1, 0}, 0, 0.01},
	}

	for _, tt := range tests {
		got := EclipticLatitude(tt.v)
		if math.Abs(got-tt.wantDeg) > tt.tol {
			t.Errorf("EclipticLatitude(%v) = %.2f°, want %.2f°", tt.v, got, tt.wantDeg)
		}
	}
}

func TestEclipticLongitude(t *testing.T) {
	tests := []struct {
		v       Vec3
		wantDeg float64
		tol     float64
	}{
		{Vec3{1, 0, 0}, 0, 0.01},
		{Vec3{0, 1, 0}, 90, 0.01},
		{Vec3{-1, 0, 0}, 180, 0.01},
		{Vec3{0, -1, 0}, 270, 0.01},
		{Vec3{1, 1, 0}, 45, 0.01},
	}

	for _, tt := range tests {
		got := EclipticLongitude(tt.v)
		if math.Abs(got-tt.wantDeg) > tt.tol {
			t.Errorf("EclipticLongitude(%v) = %.2f°, want %.2f°", tt.v, got, tt.wantDeg)
		}
	}
}

func TestRADecUnitVecRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		raDeg  float64
		decDeg float64
	}{
		{"vernal equinox", 0, 0},
		{"north pole", 0, 90},
		{"mid-sky", 123.4, -45.6},
		{"high RA", 359.9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := RADecToUnitVec(tt.raDeg, tt.decDeg)

			if math.Abs(v.Norm()-1) > 1e-12 {
				t.Errorf("unit vector norm = %v", v.Norm())
			}

			ra, dec := UnitVecToRADec(v)
			if math.Abs(dec-tt.decDeg) > 1e-9 {
				t.Errorf("dec = %v, want %v", dec, tt.decDeg)
			}
			// RA is undefined at the poles
			if math.Abs(tt.decDeg) < 89.999 {
				dRA := math.Abs(ra - tt.raDeg)
				if dRA > 180 {
					dRA = 360 - dRA
				}
				if dRA > 1e-9 {
					t.Errorf("ra = %v, want %v", ra, tt.raDeg)
				}
			}
		})
	}
}
