package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Listings older than this are excluded even when the portal's own
// freshness filter was applied (the site occasionally leaks stale cards).
const MaxAge = 24 * time.Hour

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	relativeRegex = regexp.MustCompile(`(?i)\b(\d+)\+?\s*(minute|min|hour|hr|day)s?\b`)
)

// IsFresh reports whether a posted-at string from the portal is at most one
// day old. The portal mixes relative ages ("Just now", "5 hours ago",
// "30+ days ago") with ISO dates, so both forms are handled; an empty or
// unrecognized value passes, since the search itself already ran with the
// site-side freshness filter.
func IsFresh(dateStr string) bool {
	s := strings.ToLower(strings.TrimSpace(dateStr))
	if s == "" || s == "n/a" {
		return true
	}

	if strings.Contains(s, "just now") || strings.Contains(s, "few hours") ||
		strings.Contains(s, "today") || strings.Contains(s, "recently") {
		return true
	}

	if m := relativeRegex.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "min"):
			return true
		case strings.HasPrefix(m[2], "h"):
			return n <= 24
		default: // days
			return n <= 1
		}
	}

	if isoDateRegex.MatchString(s) {
		posted, err := time.Parse("2006-01-02", s[:10])
		if err == nil {
			return isWithinMaxAge(time.Now(), posted)
		}
	}

	// unrecognized format
	return true
}

func isWithinMaxAge(now, posted time.Time) bool {
	diff := now.Sub(posted)
	if diff > MaxAge {
		return false
	}
	// tolerate slightly future dates (timezone issues)
	if diff < -2*24*time.Hour {
		return false
	}
	return true
}
