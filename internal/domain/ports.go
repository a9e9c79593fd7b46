package domain

import "context"

// PropertyRepository is the backing collection provider. ListAll must return
// properties in original insertion order; the listing engine relies on that
// order for tie-breaking and search results.
type PropertyRepository interface {
	// Write paths
	SaveProperty(ctx context.Context, p Property) error
	UpdateProperty(ctx context.Context, p Property) error
	DeleteProperty(ctx context.Context, id string) error
	SaveReview(ctx context.Context, r Review) error
	UpdateReview(ctx context.Context, r Review) error
	SaveLandlord(ctx context.Context, l Landlord) error

	// Read paths
	ListAll(ctx context.Context) ([]Property, error)
	GetProperty(ctx context.Context, id string) (Property, error)
	ListReviews(ctx context.Context, propertyID string) ([]Review, error)
	GetReview(ctx context.Context, id string) (Review, error)
	ListLandlords(ctx context.Context) ([]Landlord, error)
	GetLandlord(ctx context.Context, id string) (Landlord, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
