package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv          string
	HTTPAddr        string
	MetricsAddr     string
	DataBaseURL     string // HTTP dataset source; empty means DataDir is used
	DataDir         string
	SQLitePath      string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	FetchRPS        int
	PageSize        int
	CacheTTL        time.Duration
	RebuildDebounce time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ":9100"),
		DataBaseURL:     env("DATA_BASE_URL", ""),
		DataDir:         env("DATA_DIR", "./data"),
		SQLitePath:      env("SQLITE_PATH", "./local_reviews.db"),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		FetchRPS:        atoi("FETCH_RPS", 5),
		PageSize:        atoi("PAGE_SIZE", 10),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		RebuildDebounce: time.Duration(atoi("REBUILD_DEBOUNCE_MS", 250)) * time.Millisecond,
	}
	if c.DataBaseURL == "" {
		log.Info().Str("dir", c.DataDir).Msg("DATA_BASE_URL not set, reading datasets from disk")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
