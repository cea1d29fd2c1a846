package ports

import (
	"context"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
)

// ListingCache stores public listings. Set only stores when gen still matches
// the generation current at write time, so a listing loaded before an
// Invalidate never outlives it.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]*domain.Event, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, key string, events []*domain.Event, gen int64) error
	Invalidate(ctx context.Context) error
}
