package target

import (
	"errors"
	"fmt"
	"time"

	"github.com/litescript/ls-skyplan/internal/astro"
	"github.com/litescript/ls-skyplan/internal/ephem"
)

var (
	// ErrNoTargets indicates an empty target collection.
	ErrNoTargets = errors.New("no targets given")

	// ErrBroadcastMismatch indicates target and time collections whose
	// sizes cannot be paired.
	ErrBroadcastMismatch = errors.New("targets and times do not broadcast")

	// ErrMissingTime indicates a target kind that needs an observation
	// time was resolved without one.
	ErrMissingTime = errors.New("observation time required")

	// ErrMissingObserver indicates a target kind that needs a site was
	// resolved without one.
	ErrMissingObserver = errors.New("observer site required")
)

// SentinelDistanceKm is the distance assigned to angle-only positions
// when they merge with distance-bearing ones: 100 kiloparsecs in km.
// It is a stand-in so mixed results can share one representation, not
// a measurement.
const SentinelDistanceKm = 100e3 * astro.ParsecKm

// Pair couples one target with the time it is evaluated at. HasTime is
// false when resolution was requested without times.
type Pair struct {
	Target  Target
	Time    time.Time
	HasTime bool
}

// Pairs broadcasts targets against times element-wise. With T targets
// and S times (no times counts as one "absent" time), either the sizes
// match and pairing is by index, or the size-one side is replicated
// across the other. T and S both above one and unequal is an error.
// There is never an outer product.
func Pairs(targets []Target, times []time.Time) ([]Pair, error) {
	t := len(targets)
	if t == 0 {
		return nil, ErrNoTargets
	}

	s := len(times)
	effS := s
	if effS == 0 {
		effS = 1
	}

	if t != 1 && effS != 1 && t != effS {
		return nil, fmt.Errorf("%w: %d targets vs %d times", ErrBroadcastMismatch, t, effS)
	}

	n := t
	if effS > n {
		n = effS
	}

	pairs := make([]Pair, n)
	for i := range pairs {
		p := Pair{}
		if t == 1 {
			p.Target = targets[0]
		} else {
			p.Target = targets[i]
		}
		switch {
		case s == 0:
			// No time attached.
		case effS == 1:
			p.Time, p.HasTime = times[0], true
		default:
			p.Time, p.HasTime = times[i], true
		}
		pairs[i] = p
	}
	return pairs, nil
}

// ResolveOption configures a resolution call.
type ResolveOption func(*resolver)

// WithEphemeris sets the provider used for solar system targets. The
// default is the builtin analytic provider.
func WithEphemeris(p ephem.Provider) ResolveOption {
	return func(r *resolver) {
		r.provider = p
	}
}

type resolver struct {
	provider ephem.Provider
}

// Resolve evaluates every target/time pair and returns one coordinate
// sequence in a single self-consistent frame.
//
// Targets and times broadcast per Pairs. The observer may be nil for
// collections of fixed and solar system targets (solar system positions
// are then geocentric); constant-elevation targets require it.
//
// When all evaluated positions already share an equivalent frame the
// sequence keeps that frame. Otherwise everything is converted to ICRS.
// Positions lacking a distance receive SentinelDistanceKm if, and only
// if, they merge with positions that have one.
//
// The first evaluation error aborts the whole call; there are no
// partial results.
func Resolve(targets []Target, times []time.Time, obs *astro.Observer, opts ...ResolveOption) (astro.Sequence, error) {
	pairs, err := Pairs(targets, times)
	if err != nil {
		return astro.Sequence{}, err
	}

	r := resolver{provider: ephem.NewBuiltin()}
	for _, opt := range opts {
		opt(&r)
	}

	coords := make([]astro.Coord, len(pairs))
	for i, p := range pairs {
		c, err := r.evaluate(p, obs)
		if err != nil {
			return astro.Sequence{}, err
		}
		coords[i] = c
	}

	// A single non-scanning target yields positions in one frame by
	// construction, so the frame survey is unnecessary. A single
	// constant-elevation target gets a distinct horizon frame per time
	// and only stays on this path when there is one pair.
	if len(targets) == 1 {
		_, scans := targets[0].(ConstantElevationTarget)
		if !scans || len(pairs) == 1 {
			return assemble(coords[0].Frame, coords), nil
		}
	}

	return merge(coords), nil
}

// evaluate computes the position of one pair.
func (r resolver) evaluate(p Pair, obs *astro.Observer) (astro.Coord, error) {
	switch t := p.Target.(type) {
	case FixedTarget:
		return t.coord, nil

	case CoordTarget:
		if t.Coord.Frame == nil {
			return astro.Coord{}, fmt.Errorf("%s: %w", label(t), ErrInvalidCoord)
		}
		return t.Coord, nil

	case ConstantElevationTarget:
		if !p.HasTime {
			return astro.Coord{}, fmt.Errorf("%s: %w", label(t), ErrMissingTime)
		}
		if obs == nil {
			return astro.Coord{}, fmt.Errorf("%s: %w", label(t), ErrMissingObserver)
		}
		frame := astro.AltAz{Obstime: p.Time, Site: *obs}
		return astro.NewCoord(frame, t.azMinDeg, t.altDeg), nil

	case SolarSystemTarget:
		if !p.HasTime {
			return astro.Coord{}, fmt.Errorf("%s: %w", label(t), ErrMissingTime)
		}
		var site astro.Observer
		if obs != nil {
			site = *obs
		}
		coord, err := r.provider.BodyPosition(t.body, p.Time, site)
		if err != nil {
			return astro.Coord{}, fmt.Errorf("%s: %w", label(t), err)
		}
		return coord, nil

	case NonFixedTarget:
		return astro.Coord{}, fmt.Errorf("%s: %w", label(t), ErrNotImplemented)

	default:
		// Unreachable while the union stays sealed.
		return astro.Coord{}, fmt.Errorf("%s: %w", label(p.Target), ErrNotSupported)
	}
}

// merge reconciles positions that may span frames. If every frame is
// equivalent to the first, that frame is kept; otherwise all positions
// move to ICRS.
func merge(coords []astro.Coord) astro.Sequence {
	uniform := true
	for _, c := range coords[1:] {
		if !c.Frame.Equivalent(coords[0].Frame) {
			uniform = false
			break
		}
	}

	if uniform {
		return assemble(coords[0].Frame, coords)
	}

	converted := make([]astro.Coord, len(coords))
	for i, c := range coords {
		converted[i] = c.ICRS()
	}
	return assemble(astro.ICRS{}, converted)
}

// assemble packs coordinates into a sequence under one frame. The
// distance column exists only when at least one position has a real
// distance; the rest are then filled with SentinelDistanceKm.
func assemble(frame astro.Frame, coords []astro.Coord) astro.Sequence {
	seq := astro.Sequence{
		Frame:  frame,
		LonDeg: make([]float64, len(coords)),
		LatDeg: make([]float64, len(coords)),
	}

	for _, c := range coords {
		if c.HasDist {
			seq.DistKm = make([]float64, len(coords))
			break
		}
	}

	for i, c := range coords {
		seq.LonDeg[i] = c.LonDeg
		seq.LatDeg[i] = c.LatDeg
		if seq.DistKm != nil {
			if c.HasDist {
				seq.DistKm[i] = c.DistKm
			} else {
				seq.DistKm[i] = SentinelDistanceKm
			}
		}
	}
	return seq
}
