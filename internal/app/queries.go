package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"placedir/internal/domain"
)

// SearchResult is one page of a listing query plus the pre-pagination total.
type SearchResult struct {
	Items []domain.EnrichedPlace `json:"items"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Pages int                    `json:"pages"`
}

// SearchService runs the query pipeline over catalog snapshots with a
// cache-aside layer keyed by query state and snapshot generation, so a
// rebuild naturally invalidates every cached page.
type SearchService struct {
	catalog  *Catalog
	cache    domain.Cache
	cacheTTL time.Duration
	pageSize int
}

func NewSearchService(c *Catalog, cache domain.Cache, ttl time.Duration, pageSize int) *SearchService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &SearchService{catalog: c, cache: cache, cacheTTL: ttl, pageSize: pageSize}
}

func (s *SearchService) Search(ctx context.Context, state domain.QueryState) (SearchResult, error) {
	snap := s.catalog.Snapshot()
	key := searchKey(snap.Generation, state)

	var out SearchResult
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}

	rs := Query(snap, state)
	pr := Paginate(rs.Items, pageFromState(state), s.pageSize)
	out = SearchResult{
		Items: copyItems(pr.PageItems),
		Total: rs.Total,
		Page:  pr.Page,
		Pages: pr.Pages,
	}

	if s.cache != nil {
		// size guard: skip caching oversized pages
		if b, _ := json.Marshal(out); len(b) < 1_000_000 {
			_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
		}
	}
	return out, nil
}

func (s *SearchService) Suggest(q string) []domain.Suggestion {
	return Suggest(s.catalog.Snapshot().Places, q, DefaultSuggestLimit)
}

// pageFromState mirrors "Number(page)||1": absent, malformed and zero all
// mean page 1. Negative values survive and are clamped by Paginate.
func pageFromState(state domain.QueryState) int {
	n, err := strconv.Atoi(state[domain.KeyPage])
	if err != nil || n == 0 {
		return 1
	}
	return n
}

// searchKey canonicalizes the state (sorted k=v pairs) and hashes it.
func searchKey(generation int64, state domain.QueryState) string {
	pairs := make([]string, 0, len(state))
	for k, v := range state {
		if v != "" {
			pairs = append(pairs, k+"="+v)
		}
	}
	sort.Strings(pairs)
	sum := sha1.Sum([]byte(strings.Join(pairs, "&")))
	return fmt.Sprintf("search:%d:%s", generation, hex.EncodeToString(sum[:]))
}

// copyItems detaches the page from the snapshot's backing array before it is
// cached or handed out.
func copyItems(in []domain.EnrichedPlace) []domain.EnrichedPlace {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.EnrichedPlace, len(in))
	copy(out, in)
	return out
}
