// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"placedir/internal/app"
	"placedir/internal/domain"
)

type Handlers struct {
	Catalog *app.Catalog
	Search  *app.SearchService
	Store   domain.ReviewStore
	Rebuild *app.Debouncer
	Now     func() time.Time // injectable for tests; nil means wall clock
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/cities", h.listCities)
	s.mux.Get("/v1/categories", h.listCategories)
	s.mux.Get("/v1/places", h.listPlaces)
	s.mux.Get("/v1/places/{slug}", h.getPlace)
	s.mux.Get("/v1/places/{slug}/jsonld", h.getPlaceJSONLD)
	s.mux.Get("/v1/places/{slug}/reviews", h.listPlaceReviews)
	s.mux.Post("/v1/places/{slug}/reviews", h.postPlaceReview)
	s.mux.Get("/v1/suggest", h.suggest)
	s.mux.Get("/v1/map", h.mapView)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// queryStateFrom flattens the URL query into the listing query state;
// last-write-wins, first value per key.
func queryStateFrom(r *http.Request) domain.QueryState {
	st := domain.QueryState{}
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			st[k] = vs[0]
		}
	}
	return st
}

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	writeJSONWithETag(w, r, h.Catalog.Snapshot().Cities)
}

func (h *Handlers) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSONWithETag(w, r, h.Catalog.Snapshot().Categories)
}

func (h *Handlers) listPlaces(w http.ResponseWriter, r *http.Request) {
	out, err := h.Search.Search(r.Context(), queryStateFrom(r))
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Search failed", err.Error())
		return
	}
	writeJSONWithETag(w, r, out)
}

type placeDetail struct {
	domain.EnrichedPlace
	Stars          app.StarBreakdown `json:"stars"`
	OpenToday      bool              `json:"openToday"`
	DistanceMeters *float64          `json:"distanceMeters,omitempty"`
	Distance       string            `json:"distance,omitempty"`
}

func (h *Handlers) getPlace(w http.ResponseWriter, r *http.Request) {
	p, ok := h.placeBySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "place not found")
		return
	}

	d := placeDetail{
		EnrichedPlace: p,
		Stars:         app.Stars(p.AvgRating),
		OpenToday:     app.OpenStatusToday(p.Place, h.now()),
	}
	// near=lat,lng annotates the detail with the viewer distance; malformed
	// values are ignored, not rejected
	if from, ok := parseCoords(r.URL.Query().Get("near")); ok {
		m := app.Distance(from, p.Coords)
		d.DistanceMeters = &m
		d.Distance = app.FormatDistance(m)
	}
	writeJSONWithETag(w, r, d)
}

func (h *Handlers) getPlaceJSONLD(w http.ResponseWriter, r *http.Request) {
	p, ok := h.placeBySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "place not found")
		return
	}
	pageURL := "https://" + r.Host + "/place.html?slug=" + p.Slug
	doc := app.JSONLDForPlace(p, pageURL)
	body, _ := json.Marshal(doc)
	w.Header().Set("Content-Type", "application/ld+json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write jsonld body")
	}
}

func (h *Handlers) listPlaceReviews(w http.ResponseWriter, r *http.Request) {
	p, ok := h.placeBySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "place not found")
		return
	}

	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = l
	}

	items := p.AllReviews
	if len(items) > limit {
		items = items[:limit]
	}
	writeJSONWithETag(w, r, struct {
		Items     []domain.Review `json:"items"`
		Total     int             `json:"total"`
		Histogram map[int]int     `json:"histogram"`
	}{Items: items, Total: p.RatingCount, Histogram: app.RatingHistogram(p.AllReviews)})
}

type reviewInput struct {
	Rating float64 `json:"rating"`
	Author string  `json:"author"`
	Title  string  `json:"title"`
	Text   string  `json:"text"`
}

func (h *Handlers) postPlaceReview(w http.ResponseWriter, r *http.Request) {
	p, ok := h.placeBySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "place not found")
		return
	}

	var in reviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be a JSON review")
		return
	}

	// the rating is stored as submitted; aggregates absorb whatever arrives
	rev := domain.Review{PlaceID: p.ID, Rating: in.Rating, Author: in.Author, Title: in.Title, Text: in.Text, Source: "local"}
	if err := h.Store.Add(r.Context(), rev); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Store failed", err.Error())
		return
	}

	// bursts of submissions collapse into one snapshot rebuild; the request
	// context is gone by the time the timer fires
	h.Rebuild.Trigger(func() {
		if err := h.Catalog.Rebuild(context.Background()); err != nil {
			log.Error().Err(err).Msg("debounced rebuild failed")
		}
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "accepted"})
}

func (h *Handlers) suggest(w http.ResponseWriter, r *http.Request) {
	out := h.Search.Suggest(r.URL.Query().Get("q"))
	if out == nil {
		out = []domain.Suggestion{}
	}
	writeJSONWithETag(w, r, out)
}

func (h *Handlers) mapView(w http.ResponseWriter, r *http.Request) {
	snap := h.Catalog.Snapshot()
	rs := app.Query(snap, queryStateFrom(r))
	fc := app.MapView(rs.Items)
	body, err := fc.MarshalJSON()
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Map view failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write map body")
	}
}

func (h *Handlers) placeBySlug(slug string) (domain.EnrichedPlace, bool) {
	for _, p := range h.Catalog.Snapshot().Places {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.EnrichedPlace{}, false
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// parseCoords parses "lat,lng".
func parseCoords(s string) (domain.Coords, bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return domain.Coords{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coords{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coords{}, false
	}
	return domain.Coords{Lat: lat, Lng: lng}, true
}
