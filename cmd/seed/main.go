// cmd/seed imports a JSON export of locally-submitted reviews (the
// reviews_local format: an array of {placeId, rating, ...}) into the sqlite
// local review store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"placedir/internal/adapters/observability"
	"placedir/internal/domain"
	"placedir/internal/shared"
	"placedir/internal/storage/sqlite"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	file := flag.String("file", "reviews_local.json", "JSON array of reviews to import")
	flag.Parse()

	b, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("read export failed")
	}
	var reviews []domain.Review
	if err := json.Unmarshal(b, &reviews); err != nil {
		log.Fatal().Err(err).Msg("parse export failed")
	}

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open local review store failed")
	}
	defer store.Close()
	if err := store.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("schema failed")
	}

	ctx := context.Background()
	for _, r := range reviews {
		if err := store.Add(ctx, r); err != nil {
			log.Fatal().Err(err).Int64("placeId", r.PlaceID).Msg("insert failed")
		}
	}
	log.Info().Int("count", len(reviews)).Str("db", cfg.SQLitePath).Msg("import completed")
}
