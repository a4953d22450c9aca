// Package target models observation targets (fixed sky positions,
// constant-elevation scans, solar system bodies) and resolves mixed
// target/time collections into one uniform coordinate sequence.
//
// The target kinds form a closed union: every Target value is one of
// FixedTarget, NonFixedTarget, ConstantElevationTarget,
// SolarSystemTarget, or CoordTarget, so a type switch over them is
// exhaustive.
package target

import (
	"errors"
	"fmt"

	"github.com/litescript/ls-skyplan/internal/astro"
)

var (
	// ErrInvalidCoord indicates a target coordinate without a usable frame.
	ErrInvalidCoord = errors.New("coordinate has no frame")

	// ErrNotSupported indicates an accessor the target kind does not define.
	ErrNotSupported = errors.New("not supported for this target kind")

	// ErrNotImplemented marks the non-fixed placeholder kind.
	ErrNotImplemented = errors.New("non-fixed targets are not implemented")
)

// Target is one observation target. The interface is sealed: the kinds
// in this package are the only implementations.
type Target interface {
	// Name returns the display name. May be empty.
	Name() string

	// Marker returns the caller-supplied marker string. May be empty.
	Marker() string

	sealed()
}

// Option sets optional target attributes. Options that do not apply to
// the constructed kind are ignored.
type Option func(*options)

type options struct {
	name   string
	marker string

	raMin        float64
	hasRAMin     bool
	decCenter    float64
	hasDecCenter bool
	altMin       float64
	altMax       float64
	hasAltRange  bool
}

// WithName sets the display name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMarker sets a marker string carried through for the caller's use.
func WithMarker(marker string) Option {
	return func(o *options) {
		o.marker = marker
	}
}

// WithRAMin records the minimum right ascension hint of a
// constant-elevation scan.
func WithRAMin(raDeg float64) Option {
	return func(o *options) {
		o.raMin = raDeg
		o.hasRAMin = true
	}
}

// WithDecCenter records the declination-of-center hint of a
// constant-elevation scan.
func WithDecCenter(decDeg float64) Option {
	return func(o *options) {
		o.decCenter = decDeg
		o.hasDecCenter = true
	}
}

// WithAltRange marks a constant-elevation scan as variable-altitude
// between the given bounds.
func WithAltRange(minDeg, maxDeg float64) Option {
	return func(o *options) {
		o.altMin = minDeg
		o.altMax = maxDeg
		o.hasAltRange = true
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FixedTarget is a target at an unchanging sky position.
type FixedTarget struct {
	name   string
	marker string
	coord  astro.Coord
}

// NewFixed creates a fixed target from a coordinate. The coordinate must
// carry a frame, otherwise ErrInvalidCoord is returned.
func NewFixed(coord astro.Coord, opts ...Option) (FixedTarget, error) {
	if coord.Frame == nil {
		return FixedTarget{}, ErrInvalidCoord
	}
	o := applyOptions(opts)
	return FixedTarget{name: o.name, marker: o.marker, coord: coord}, nil
}

// Name implements Target.
func (t FixedTarget) Name() string { return t.name }

// Marker implements Target.
func (t FixedTarget) Marker() string { return t.marker }

// Coord returns the stored position in its original frame.
func (t FixedTarget) Coord() astro.Coord { return t.coord }

// RA returns the right ascension in ICRS degrees, converting from the
// stored frame when necessary.
func (t FixedTarget) RA() float64 { return t.coord.ICRS().LonDeg }

// Dec returns the declination in ICRS degrees.
func (t FixedTarget) Dec() float64 { return t.coord.ICRS().LatDeg }

func (t FixedTarget) sealed() {}

// NonFixedTarget is a placeholder for orbit-propagated targets such as
// satellites. Resolving one fails with ErrNotImplemented; the kind
// exists so switches over the union stay total.
type NonFixedTarget struct {
	name   string
	marker string
}

// NewNonFixed creates the placeholder target.
func NewNonFixed(opts ...Option) NonFixedTarget {
	o := applyOptions(opts)
	return NonFixedTarget{name: o.name, marker: o.marker}
}

// Name implements Target.
func (t NonFixedTarget) Name() string { return t.name }

// Marker implements Target.
func (t NonFixedTarget) Marker() string { return t.marker }

func (t NonFixedTarget) sealed() {}

// ConstantElevationTarget scans along a band of constant altitude
// between two azimuths. It has no sky position of its own; one is
// computed in the horizon frame when resolved at a specific time and
// site, using the minimum azimuth as the representative direction.
type ConstantElevationTarget struct {
	name   string
	marker string

	altDeg   float64
	azMinDeg float64
	azMaxDeg float64

	raMin        float64
	hasRAMin     bool
	decCenter    float64
	hasDecCenter bool
	altMin       float64
	altMax       float64
	hasAltRange  bool
}

// NewConstantElevation creates a constant-elevation scan target. The
// values are stored verbatim; range problems surface at resolution time,
// not here.
func NewConstantElevation(altDeg, azMinDeg, azMaxDeg float64, opts ...Option) ConstantElevationTarget {
	o := applyOptions(opts)
	return ConstantElevationTarget{
		name:         o.name,
		marker:       o.marker,
		altDeg:       altDeg,
		azMinDeg:     azMinDeg,
		azMaxDeg:     azMaxDeg,
		raMin:        o.raMin,
		hasRAMin:     o.hasRAMin,
		decCenter:    o.decCenter,
		hasDecCenter: o.hasDecCenter,
		altMin:       o.altMin,
		altMax:       o.altMax,
		hasAltRange:  o.hasAltRange,
	}
}

// Name implements Target.
func (t ConstantElevationTarget) Name() string { return t.name }

// Marker implements Target.
func (t ConstantElevationTarget) Marker() string { return t.marker }

// Alt returns the scan altitude in degrees.
func (t ConstantElevationTarget) Alt() float64 { return t.altDeg }

// AzRange returns the azimuth bounds in degrees.
func (t ConstantElevationTarget) AzRange() (minDeg, maxDeg float64) {
	return t.azMinDeg, t.azMaxDeg
}

// WrapsAround reports whether the scan crosses the 0/360 azimuth seam,
// which is how an azimuth minimum above the maximum is read.
func (t ConstantElevationTarget) WrapsAround() bool {
	return t.azMinDeg > t.azMaxDeg
}

// RAMin returns the right ascension hint, if one was set.
func (t ConstantElevationTarget) RAMin() (float64, bool) {
	return t.raMin, t.hasRAMin
}

// DecCenter returns the declination-of-center hint, if one was set.
func (t ConstantElevationTarget) DecCenter() (float64, bool) {
	return t.decCenter, t.hasDecCenter
}

// AltRange returns the variable-altitude bounds, if the scan has them.
func (t ConstantElevationTarget) AltRange() (minDeg, maxDeg float64, ok bool) {
	return t.altMin, t.altMax, t.hasAltRange
}

func (t ConstantElevationTarget) sealed() {}

// SolarSystemTarget is a solar system body resolved through an
// ephemeris provider. The body key is stored verbatim; whether the
// ephemeris knows it surfaces at resolution time.
type SolarSystemTarget struct {
	name   string
	marker string
	body   string
}

// NewSolarSystem creates a solar system target. The display name
// defaults to the body key.
func NewSolarSystem(body string, opts ...Option) SolarSystemTarget {
	o := applyOptions(opts)
	if o.name == "" {
		o.name = body
	}
	return SolarSystemTarget{name: o.name, marker: o.marker, body: body}
}

// Name implements Target.
func (t SolarSystemTarget) Name() string { return t.name }

// Marker implements Target.
func (t SolarSystemTarget) Marker() string { return t.marker }

// Body returns the ephemeris body key.
func (t SolarSystemTarget) Body() string { return t.body }

func (t SolarSystemTarget) sealed() {}

// CoordTarget wraps an already-resolved coordinate so bare positions can
// ride in a target list. The resolver passes the coordinate through
// unchanged.
type CoordTarget struct {
	Coord astro.Coord
}

// Name implements Target.
func (t CoordTarget) Name() string { return "" }

// Marker implements Target.
func (t CoordTarget) Marker() string { return "" }

func (t CoordTarget) sealed() {}

// RADec returns the ICRS right ascension and declination of a target.
// Only fixed targets define one: the other kinds report ErrNotSupported,
// except the non-fixed placeholder which reports ErrNotImplemented.
func RADec(t Target) (raDeg, decDeg float64, err error) {
	switch t := t.(type) {
	case FixedTarget:
		return t.RA(), t.Dec(), nil
	case NonFixedTarget:
		return 0, 0, fmt.Errorf("%s: %w", label(t), ErrNotImplemented)
	default:
		return 0, 0, fmt.Errorf("%s: %w", label(t), ErrNotSupported)
	}
}

// label names a target for error messages, falling back to the kind
// when the target is anonymous.
func label(t Target) string {
	if name := t.Name(); name != "" {
		return fmt.Sprintf("target %q", name)
	}
	switch t.(type) {
	case FixedTarget:
		return "fixed target"
	case NonFixedTarget:
		return "non-fixed target"
	case ConstantElevationTarget:
		return "constant-elevation target"
	case SolarSystemTarget:
		return "solar system target"
	case CoordTarget:
		return "coordinate target"
	default:
		return "target"
	}
}
