package names

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/litescript/ls-skyplan/internal/astro"
)

type stubResolver struct {
	coord astro.Coord
	err   error
	calls int
}

func (s *stubResolver) Resolve(ctx context.Context, name string) (astro.Coord, error) {
	s.calls++
	if s.err != nil {
		return astro.Coord{}, s.err
	}
	return s.coord, nil
}

func TestChain_FirstResolverWins(t *testing.T) {
	first := &stubResolver{coord: astro.ICRSCoord(10, 20)}
	second := &stubResolver{coord: astro.ICRSCoord(30, 40)}
	chain := NewChain(first, second)

	coord, err := chain.Resolve(context.Background(), "vega")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if coord.LonDeg != 10 {
		t.Errorf("coord from wrong resolver: %v", coord)
	}
	if second.calls != 0 {
		t.Error("second resolver should not be consulted")
	}
}

func TestChain_FallsPastNotFound(t *testing.T) {
	first := &stubResolver{err: fmt.Errorf("%w: %q", ErrNotFound, "vega")}
	second := &stubResolver{coord: astro.ICRSCoord(30, 40)}
	chain := NewChain(first, second)

	coord, err := chain.Resolve(context.Background(), "vega")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if coord.LonDeg != 30 {
		t.Errorf("coord = %v, want fallback answer", coord)
	}
}

func TestChain_NetworkErrorNotMasked(t *testing.T) {
	// A network failure followed by not-found must surface the failure,
	// not pretend the object does not exist.
	netErr := errors.New("connection refused")
	first := &stubResolver{err: netErr}
	second := &stubResolver{err: fmt.Errorf("%w: %q", ErrNotFound, "vega")}
	chain := NewChain(first, second)

	_, err := chain.Resolve(context.Background(), "vega")
	if !errors.Is(err, netErr) {
		t.Errorf("error = %v, want the network error", err)
	}
}

func TestChain_AllNotFound(t *testing.T) {
	first := &stubResolver{err: fmt.Errorf("%w: %q", ErrNotFound, "x")}
	second := &stubResolver{err: fmt.Errorf("%w: %q", ErrNotFound, "x")}
	chain := NewChain(first, second)

	_, err := chain.Resolve(context.Background(), "x")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestChain_Empty(t *testing.T) {
	chain := NewChain()
	_, err := chain.Resolve(context.Background(), "anything")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
