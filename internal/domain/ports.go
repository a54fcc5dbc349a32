package domain

import "context"

// DatasetSource fetches one named raw dataset (cities, categories, places,
// reviews) and decodes it into out.
type DatasetSource interface {
	Dataset(ctx context.Context, name string, out any) error
}

// ReviewStore is the locally-persisted review set. Reads are synchronous and
// single-actor; entries are unioned with remote reviews before enrichment.
type ReviewStore interface {
	Add(ctx context.Context, r Review) error
	ListAll(ctx context.Context) ([]Review, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
