package app

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"placedir/internal/domain"
)

const DefaultPageSize = 10

// Query runs the filter and sort stages over a snapshot. All filters are
// AND-combined; a filter only applies when its state key is present.
// Listings are scoped to the first city in the dataset.
func Query(snap domain.Snapshot, state domain.QueryState) domain.ResultSet {
	var cityID string
	if len(snap.Cities) > 0 {
		cityID = snap.Cities[0].ID
	}

	items := make([]domain.EnrichedPlace, 0, len(snap.Places))
	for _, p := range snap.Places {
		if p.CityID == cityID {
			items = append(items, p)
		}
	}

	if slug := state[domain.KeyCategory]; slug != "" {
		// unknown slug leaves the category filter inactive
		for _, c := range snap.Categories {
			if c.Slug == slug {
				items = keep(items, func(p domain.EnrichedPlace) bool { return p.CategoryID == c.ID })
				break
			}
		}
	}

	q := strings.ToLower(strings.TrimSpace(state[domain.KeyQuery]))
	if q != "" {
		items = keep(items, func(p domain.EnrichedPlace) bool {
			return strings.Contains(searchText(p.Place), q)
		})
	}

	if price := state[domain.KeyPrice]; price != "" {
		items = keep(items, func(p domain.EnrichedPlace) bool { return p.PriceLevel == price })
	}

	if s := state[domain.KeyStars]; s != "" {
		min, err := strconv.ParseFloat(s, 64)
		if err != nil {
			min = math.NaN() // nothing passes a malformed threshold
		}
		items = keep(items, func(p domain.EnrichedPlace) bool { return p.AvgRating >= min })
	}

	if state[domain.KeyOpenNow] == "1" {
		items = keep(items, func(p domain.EnrichedPlace) bool { return p.IsOpenNow })
	}

	if io := strings.ToLower(state[domain.KeyIndoorOutdoor]); io != "" {
		items = keep(items, func(p domain.EnrichedPlace) bool {
			return strings.ToLower(p.IndoorOutdoor) == io
		})
	}

	if n := strings.ToLower(state[domain.KeyNeighborhood]); n != "" {
		items = keep(items, func(p domain.EnrichedPlace) bool {
			return strings.Contains(strings.ToLower(p.Neighborhood), n)
		})
	}

	if t := strings.ToLower(state[domain.KeyTags]); t != "" {
		items = keep(items, func(p domain.EnrichedPlace) bool {
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), t) {
					return true
				}
			}
			return false
		})
	}

	sortItems(items, state[domain.KeySort], q)
	return domain.ResultSet{Items: items, Total: len(items)}
}

// Paginate clamps the requested page into [1, pages] and returns that slice.
// Out-of-range pages clamp, they never error. An empty list still has one
// (empty) page.
func Paginate(items []domain.EnrichedPlace, page, size int) domain.PageResult {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (len(items) + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return domain.PageResult{PageItems: items[start:end], Page: page, Pages: pages}
}

func keep(items []domain.EnrichedPlace, pred func(domain.EnrichedPlace) bool) []domain.EnrichedPlace {
	out := items[:0:0]
	for _, p := range items {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// searchText is the free-text haystack: name, short and long description,
// neighborhood and tags, joined and lowercased.
func searchText(p domain.Place) string {
	parts := make([]string, 0, 4+len(p.Tags))
	parts = append(parts, p.Name, p.Short, p.Description, p.Neighborhood)
	parts = append(parts, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// priceTier treats the length of the price-level string as the tier
// ("€" < "€€" < "€€€").
func priceTier(p domain.EnrichedPlace) int { return utf8.RuneCountInString(p.PriceLevel) }

func sortItems(items []domain.EnrichedPlace, sortKey, q string) {
	switch sortKey {
	case "rating":
		sort.SliceStable(items, func(i, j int) bool { return items[i].AvgRating > items[j].AvgRating })
	case "popularity":
		sort.SliceStable(items, func(i, j int) bool { return items[i].RatingCount > items[j].RatingCount })
	case "priceAsc":
		sort.SliceStable(items, func(i, j int) bool { return priceTier(items[i]) < priceTier(items[j]) })
	case "priceDesc":
		sort.SliceStable(items, func(i, j int) bool { return priceTier(items[i]) > priceTier(items[j]) })
	default: // relevance
		if q == "" {
			sort.SliceStable(items, func(i, j int) bool { return items[i].AvgRating > items[j].AvgRating })
			return
		}
		kw := strings.Fields(q)
		scores := make([]float64, len(items))
		for i, p := range items {
			scores[i] = relevanceScore(p, kw)
		}
		idx := make([]int, len(items))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
		sorted := make([]domain.EnrichedPlace, len(items))
		for i, j := range idx {
			sorted[i] = items[j]
		}
		copy(items, sorted)
	}
}

// relevanceScore counts how many query keywords appear anywhere in the
// serialized place (review texts included) and adds avgRating/5.
func relevanceScore(p domain.EnrichedPlace, keywords []string) float64 {
	b, err := json.Marshal(p)
	if err != nil {
		return p.AvgRating / 5
	}
	blob := strings.ToLower(string(b))
	var hits float64
	for _, k := range keywords {
		if strings.Contains(blob, k) {
			hits++
		}
	}
	return hits + p.AvgRating/5
}
