package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "placedir", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "placedir", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	DatasetFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "placedir", Name: "dataset_fetches_total", Help: "Dataset fetch attempts."},
		[]string{"dataset", "status"},
	)
	DatasetFetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "placedir", Name: "dataset_fetch_duration_seconds",
			Help:    "Dataset fetch duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dataset"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "placedir", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	CatalogRebuilds = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "placedir", Name: "catalog_rebuilds_total", Help: "Catalog snapshot rebuilds."},
	)
)

func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, DatasetFetches, DatasetFetchLatency, CacheEvents, CatalogRebuilds)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveFetch(dataset string, status int, dur time.Duration) {
	DatasetFetches.WithLabelValues(dataset, strconv.Itoa(status)).Inc()
	DatasetFetchLatency.WithLabelValues(dataset).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveRebuild() { CatalogRebuilds.Inc() }
