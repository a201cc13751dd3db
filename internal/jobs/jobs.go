// Domain types shared by the scanner, the application engine and the site client.
package jobs

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ApplyMode tells whether a listing can be applied to inside the portal
// or redirects to an external company site.
type ApplyMode int

const (
	ApplyDirect ApplyMode = iota
	ApplyExternal
)

// Listing describes one job posting discovered on a results page.
type Listing struct {
	ID             string
	Title          string
	Company        string
	Location       string
	URL            string
	PostedAt       string // the portal's own age string, e.g. "1 day ago"
	ApplyMode      ApplyMode
	AlreadyApplied bool
}

// Criteria drives a single search: one title, one location, minimum experience.
type Criteria struct {
	Title      string
	Location   string
	Experience int
}

// Outcome of one application attempt.
type Outcome int

const (
	Applied Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Result is produced exactly once per attempted listing.
type Result struct {
	Listing Listing
	Outcome Outcome
	Reason  string
}

// Summary accumulates over one run iteration and is logged at the end.
type Summary struct {
	AppliedCount      int
	SkippedCount      int
	FailedCount       int
	HeadlineRotated   bool
	ResumeUpdated     bool
	EarlyAccessShared int
}

func (s Summary) String() string {
	return fmt.Sprintf("applied=%d skipped=%d failed=%d headline_rotated=%t resume_updated=%t early_access=%d",
		s.AppliedCount, s.SkippedCount, s.FailedCount, s.HeadlineRotated, s.ResumeUpdated, s.EarlyAccessShared)
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// DeriveID builds a stable listing identity from title, company and location.
// The same posting resurfacing across fallback passes must map to the same id,
// so the fields are diacritic-folded, lowercased and space-collapsed first.
func DeriveID(title, company, location string) string {
	return fold(title) + "|" + fold(company) + "|" + fold(location)
}

func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), "-")
}
