package filter

import (
	"github.com/Barkat444/HireMeMaybe/internal/jobs"
)

// Exclude applies the scanner's filters in order: freshness, apply mode,
// already-applied. It returns a non-empty reason for the first filter the
// listing fails, or "" when the listing may be attempted.
func Exclude(l jobs.Listing) string {
	if !IsFresh(l.PostedAt) {
		return "stale posting"
	}

	if l.ApplyMode == jobs.ApplyExternal {
		return "external redirect"
	}

	if l.AlreadyApplied {
		return "already applied"
	}

	return ""
}
