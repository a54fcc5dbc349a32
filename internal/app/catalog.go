package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"placedir/internal/adapters/observability"
	"placedir/internal/domain"
)

// Dataset names the source must serve.
const (
	DatasetCities     = "cities"
	DatasetCategories = "categories"
	DatasetPlaces     = "places"
	DatasetReviews    = "reviews"
)

type rawDatasets struct {
	cities     []domain.City
	categories []domain.Category
	places     []domain.Place
	reviews    []domain.Review
}

// Catalog owns the enriched snapshot. Load fetches the four datasets
// concurrently and fails as a whole if any fetch fails; Rebuild re-merges the
// local review store against the retained raw datasets without refetching.
type Catalog struct {
	src   domain.DatasetSource
	store domain.ReviewStore

	mu   sync.RWMutex
	raw  rawDatasets
	snap domain.Snapshot
}

func NewCatalog(src domain.DatasetSource, store domain.ReviewStore) *Catalog {
	return &Catalog{src: src, store: store}
}

func (c *Catalog) Load(ctx context.Context) error {
	var raw rawDatasets
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.src.Dataset(ctx, DatasetCities, &raw.cities) })
	g.Go(func() error { return c.src.Dataset(ctx, DatasetCategories, &raw.categories) })
	g.Go(func() error { return c.src.Dataset(ctx, DatasetPlaces, &raw.places) })
	g.Go(func() error { return c.src.Dataset(ctx, DatasetReviews, &raw.reviews) })
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	c.raw = raw
	c.mu.Unlock()
	return c.Rebuild(ctx)
}

// Rebuild re-reads the local store, re-merges and re-enriches. A failing
// local read degrades to an empty local set; it never fails the rebuild.
func (c *Catalog) Rebuild(ctx context.Context) error {
	var local []domain.Review
	if c.store != nil {
		var err error
		local, err = c.store.ListAll(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("local review store read failed, continuing without")
			local = nil
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// remote first, local appended; no dedup, so duplicates double-count
	merged := make([]domain.Review, 0, len(c.raw.reviews)+len(local))
	merged = append(merged, c.raw.reviews...)
	merged = append(merged, local...)

	c.snap = domain.Snapshot{
		Cities:     c.raw.cities,
		Categories: c.raw.categories,
		Places:     Enrich(c.raw.places, merged, c.raw.categories),
		Reviews:    merged,
		Generation: c.snap.Generation + 1,
	}
	observability.ObserveRebuild()
	log.Info().
		Int("places", len(c.snap.Places)).
		Int("reviews", len(merged)).
		Int("local", len(local)).
		Int64("generation", c.snap.Generation).
		Msg("catalog rebuilt")
	return nil
}

func (c *Catalog) Snapshot() domain.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}
