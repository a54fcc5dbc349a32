package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"placedir/internal/adapters/dataset"
	server "placedir/internal/adapters/http_server"
	"placedir/internal/adapters/observability"
	redisad "placedir/internal/adapters/redis"
	"placedir/internal/app"
	"placedir/internal/domain"
	"placedir/internal/shared"
	"placedir/internal/storage/sqlite"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	var src domain.DatasetSource
	if cfg.DataBaseURL != "" {
		src = dataset.NewClient(cfg.DataBaseURL, cfg.FetchRPS)
	} else {
		src = dataset.NewDir(cfg.DataDir)
	}

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open local review store failed")
	}
	defer store.Close()
	if err := store.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("local review store schema failed")
	}

	// boot: four concurrent dataset fetches, joined; any failure fails boot
	catalog := app.NewCatalog(src, store)
	if err := catalog.Load(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	search := app.NewSearchService(catalog, cache, cfg.CacheTTL, cfg.PageSize)
	rebuild := app.NewDebouncer(cfg.RebuildDebounce)
	defer rebuild.Stop()

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Catalog: catalog, Search: search, Store: store, Rebuild: rebuild})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
