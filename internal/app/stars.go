package app

import (
	"fmt"
	"math"

	"placedir/internal/domain"
)

// StarBreakdown is the display form of an average rating, rounded to the
// nearest half star. Filtering and sorting always use the unrounded average;
// this is presentation only.
type StarBreakdown struct {
	Full  int    `json:"full"`
	Half  bool   `json:"half"`
	Empty int    `json:"empty"`
	Label string `json:"label"` // one-decimal average, e.g. "4.5"
}

func Stars(avg float64) StarBreakdown {
	s := math.Round(avg*2) / 2
	full := int(math.Floor(s))
	half := s-float64(full) >= 0.5
	empty := 5 - full
	if half {
		empty--
	}
	return StarBreakdown{Full: full, Half: half, Empty: empty, Label: fmt.Sprintf("%.1f", avg)}
}

// RatingHistogram counts reviews per star value 1..5. Out-of-range ratings
// land on whatever bucket they truncate to; they are not filtered here.
func RatingHistogram(reviews []domain.Review) map[int]int {
	h := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		h[int(r.Rating)]++
	}
	return h
}
