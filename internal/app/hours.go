package app

import (
	"strconv"
	"strings"
	"time"

	"placedir/internal/domain"
)

var weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// OpenStatusToday resolves whether the place is open at the given local time.
// A missing entry or a literal "closed" means closed. The interval check is
// inclusive on both ends. Any parse failure falls back to the place's stored
// isOpenNow flag, best effort.
func OpenStatusToday(p domain.Place, now time.Time) bool {
	oh := p.OpeningHours[weekdayKeys[now.Weekday()]]
	if oh == "" || oh == "closed" {
		return false
	}
	from, until, ok := parseInterval(oh)
	if !ok {
		return p.IsOpenNow
	}
	cur := now.Hour()*60 + now.Minute()
	return cur >= from && cur <= until
}

// parseInterval parses "HH:MM-HH:MM" into minutes since midnight.
func parseInterval(s string) (from, until int, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	from, ok = parseClock(parts[0])
	if !ok {
		return 0, 0, false
	}
	until, ok = parseClock(parts[1])
	if !ok {
		return 0, 0, false
	}
	return from, until, true
}

func parseClock(s string) (int, bool) {
	hm := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(hm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
