package target

import (
	"context"
	"fmt"

	"github.com/litescript/ls-skyplan/internal/names"
)

// FromName resolves a catalog name into a FixedTarget. The display name
// defaults to the query string when WithName is not given. Resolver
// failures, including names.ErrNotFound, propagate wrapped.
func FromName(ctx context.Context, r names.Resolver, query string, opts ...Option) (FixedTarget, error) {
	coord, err := r.Resolve(ctx, query)
	if err != nil {
		return FixedTarget{}, fmt.Errorf("resolve %q: %w", query, err)
	}

	t, err := NewFixed(coord, opts...)
	if err != nil {
		return FixedTarget{}, fmt.Errorf("resolve %q: %w", query, err)
	}
	if t.name == "" {
		t.name = query
	}
	return t, nil
}
