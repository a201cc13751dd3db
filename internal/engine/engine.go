// The application engine decides which listings to attempt, in what order,
// and when to stop: it consumes scans for one search criteria, deduplicates
// by listing id, counts successful applications against a cap, and re-scans
// (fallback passes) while the cap is unfilled and new candidates keep
// appearing.
package engine

import (
	"context"
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/Barkat444/HireMeMaybe/internal/jobs"
)

// Scanner produces candidate listings for one search. The sequence is lazy
// and finite; it reflects live site state at scan time and is not
// restartable. Re-invoking Scan performs a fresh scan.
type Scanner interface {
	Scan(ctx context.Context, criteria jobs.Criteria) iter.Seq[jobs.Listing]
}

// Applier executes one application attempt against the live page.
type Applier interface {
	Apply(ctx context.Context, listing jobs.Listing) jobs.Result
}

// Stats is the summary fragment one Run contributes.
type Stats struct {
	Applied int
	Skipped int
	Failed  int
}

type Engine struct {
	scanner Scanner
	applier Applier
	log     *zap.SugaredLogger

	// attempted lives for the engine's lifetime so a listing surfacing under
	// several criteria within the same run is still only attempted once.
	attempted mapset.Set[string]
}

func New(scanner Scanner, applier Applier, log *zap.SugaredLogger) *Engine {
	return &Engine{
		scanner:   scanner,
		applier:   applier,
		log:       log,
		attempted: mapset.NewSet[string](),
	}
}

// Run applies to listings matching criteria until cap applications succeeded
// or the candidate pool is exhausted. Exhaustion means a full pass attempted
// zero listings not seen before — with one exception: an empty very first
// pass still earns a single fallback scan, guarding against a transient
// empty page load. Failed and skipped attempts never count toward the cap
// and are never retried within the run.
func (e *Engine) Run(ctx context.Context, criteria jobs.Criteria, cap int) Stats {
	var stats Stats
	if cap <= 0 {
		return stats
	}

	for pass := 1; ; pass++ {
		newAttempts := 0

		for listing := range e.scanner.Scan(ctx, criteria) {
			if e.attempted.Contains(listing.ID) {
				continue
			}
			e.attempted.Add(listing.ID)
			newAttempts++

			res := e.applier.Apply(ctx, listing)
			switch res.Outcome {
			case jobs.Applied:
				stats.Applied++
				e.log.Infof("✅ Applied %d/%d: %s at %s", stats.Applied, cap, listing.Title, listing.Company)
			case jobs.Skipped:
				stats.Skipped++
				e.log.Infof("⏭️ Skipped %s at %s: %s", listing.Title, listing.Company, res.Reason)
			default:
				stats.Failed++
				e.log.Warnf("❌ Failed %s at %s: %s", listing.Title, listing.Company, res.Reason)
			}

			if stats.Applied >= cap {
				break
			}
		}

		if stats.Applied >= cap {
			e.log.Infof("🎯 Reached application target (%d)", cap)
			return stats
		}
		if ctx.Err() != nil {
			e.log.Warnf("Run cancelled after pass %d: %v", pass, ctx.Err())
			return stats
		}
		if newAttempts == 0 && pass > 1 {
			e.log.Infof("Candidate pool exhausted after %d passes, applied %d/%d", pass, stats.Applied, cap)
			return stats
		}

		e.log.Infof("🔁 Pass %d attempted %d new listings, applied %d/%d so far. Scanning again...",
			pass, newAttempts, stats.Applied, cap)
	}
}
