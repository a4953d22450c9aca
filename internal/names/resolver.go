// Package names resolves catalog object names like "Vega" or "M31" to
// celestial coordinates, either through the CDS Sesame service or a
// built-in table of bright objects.
package names

import (
	"context"
	"errors"
	"fmt"

	"github.com/litescript/ls-skyplan/internal/astro"
)

// ErrNotFound indicates no catalog entry matched the queried name.
var ErrNotFound = errors.New("object name not found")

// Resolver turns an object name into an ICRS coordinate.
type Resolver interface {
	// Resolve looks up a name. Returns an error wrapping ErrNotFound
	// when no catalog knows the object.
	Resolve(ctx context.Context, name string) (astro.Coord, error)
}

// Chain tries several resolvers in order and returns the first answer.
// A resolver that reports ErrNotFound is skipped silently; other errors
// are remembered so a network failure is not masked as a missing name.
type Chain struct {
	resolvers []Resolver
}

// NewChain builds a resolver chain. Order matters: earlier resolvers win.
func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers}
}

// Resolve implements Resolver.
func (c *Chain) Resolve(ctx context.Context, name string) (astro.Coord, error) {
	var lastErr error
	for _, r := range c.resolvers {
		coord, err := r.Resolve(ctx, name)
		if err == nil {
			return coord, nil
		}
		if !errors.Is(err, ErrNotFound) {
			lastErr = err
		}
	}
	if lastErr != nil {
		return astro.Coord{}, lastErr
	}
	return astro.Coord{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
