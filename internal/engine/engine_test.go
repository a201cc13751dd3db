package engine

import (
	"context"
	"fmt"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Barkat444/HireMeMaybe/internal/jobs"
)

// fakeScanner replays scripted passes; once the script runs out, the last
// pass repeats, modeling a stable live candidate pool.
type fakeScanner struct {
	passes [][]jobs.Listing
	calls  int
}

func (f *fakeScanner) Scan(_ context.Context, _ jobs.Criteria) iter.Seq[jobs.Listing] {
	idx := f.calls
	f.calls++
	return func(yield func(jobs.Listing) bool) {
		if len(f.passes) == 0 {
			return
		}
		pool := f.passes[min(idx, len(f.passes)-1)]
		for _, l := range pool {
			if !yield(l) {
				return
			}
		}
	}
}

type fakeApplier struct {
	outcomes map[string]jobs.Outcome
	attempts []string
}

func (f *fakeApplier) Apply(_ context.Context, l jobs.Listing) jobs.Result {
	f.attempts = append(f.attempts, l.ID)
	outcome, ok := f.outcomes[l.ID]
	if !ok {
		outcome = jobs.Applied
	}
	return jobs.Result{Listing: l, Outcome: outcome, Reason: outcome.String()}
}

func listing(id string) jobs.Listing {
	return jobs.Listing{ID: id, Title: id, Company: "ACME"}
}

func listings(ids ...string) []jobs.Listing {
	out := make([]jobs.Listing, 0, len(ids))
	for _, id := range ids {
		out = append(out, listing(id))
	}
	return out
}

func newEngine(s Scanner, a Applier) *Engine {
	return New(s, a, zap.NewNop().Sugar())
}

var criteria = jobs.Criteria{Title: "DevOps Engineer", Location: "Bengaluru", Experience: 2}

func TestRunStopsAtCapInYieldOrder(t *testing.T) {
	scanner := &fakeScanner{passes: [][]jobs.Listing{listings("a", "b", "c", "d", "e")}}
	applier := &fakeApplier{}

	stats := newEngine(scanner, applier).Run(context.Background(), criteria, 3)

	assert.Equal(t, Stats{Applied: 3}, stats)
	assert.Equal(t, []string{"a", "b", "c"}, applier.attempts)
	assert.Equal(t, 1, scanner.calls, "no fallback pass when the cap is reached")
}

func TestRunZeroCapAttemptsNothing(t *testing.T) {
	scanner := &fakeScanner{passes: [][]jobs.Listing{listings("a")}}
	applier := &fakeApplier{}

	stats := newEngine(scanner, applier).Run(context.Background(), criteria, 0)

	assert.Equal(t, Stats{}, stats)
	assert.Empty(t, applier.attempts)
	assert.Equal(t, 0, scanner.calls)
}

func TestRunPartialFulfillmentStopsOnExhaustion(t *testing.T) {
	// primary pass yields one listing; the fallback re-surfaces the same id,
	// which is already attempted, so the engine must stop at 1.
	scanner := &fakeScanner{passes: [][]jobs.Listing{listings("a")}}
	applier := &fakeApplier{}

	stats := newEngine(scanner, applier).Run(context.Background(), criteria, 3)

	assert.Equal(t, Stats{Applied: 1}, stats)
	assert.Equal(t, []string{"a"}, applier.attempts)
	assert.Equal(t, 2, scanner.calls)
}

func TestRunNeverAppliesSameIDTwice(t *testing.T) {
	scanner := &fakeScanner{passes: [][]jobs.Listing{
		listings("a", "b", "a"),
		listings("b", "a", "c"),
	}}
	applier := &fakeApplier{}

	stats := newEngine(scanner, applier).Run(context.Background(), criteria, 10)

	assert.Equal(t, 3, stats.Applied)
	assert.Equal(t, []string{"a", "b", "c"}, applier.attempts)
}

func TestRunEmptyFirstPassGetsOneFallback(t *testing.T) {
	scanner := &fakeScanner{passes: [][]jobs.Listing{{}}}
	applier := &fakeApplier{}

	stats := newEngine(scanner, applier).Run(context.Background(), criteria, 3)

	assert.Equal(t, Stats{}, stats)
	assert.Equal(t, 2, scanner.calls, "transient empty first page earns exactly one fallback scan")
}

func TestRunRecoversFromEmptyFirstPass(t *testing.T) {
	scanner := &fakeScanner{passes: [][]jobs.Listing{{}, listings("a", "b")}}
	applier := &fakeApplier{}

	stats := newEngine(scanner, applier).Run(context.Background(), criteria, 2)

	assert.Equal(t, Stats{Applied: 2}, stats)
}

func TestRunFailuresDoNotCountTowardCap(t *testing.T) {
	scanner := &fakeScanner{passes: [][]jobs.Listing{listings("a", "b", "c", "d")}}
	applier := &fakeApplier{outcomes: map[string]jobs.Outcome{
		"a": jobs.Failed,
		"b": jobs.Skipped,
	}}

	stats := newEngine(scanner, applier).Run(context.Background(), criteria, 2)

	assert.Equal(t, Stats{Applied: 2, Skipped: 1, Failed: 1}, stats)
	assert.Equal(t, []string{"a", "b", "c", "d"}, applier.attempts)
}

func TestRunTerminatesOnStablePoolSmallerThanCap(t *testing.T) {
	pool := listings("a", "b", "c")
	scanner := &fakeScanner{passes: [][]jobs.Listing{pool}}
	applier := &fakeApplier{}

	stats := newEngine(scanner, applier).Run(context.Background(), criteria, 10)

	assert.Equal(t, 3, stats.Applied)
	// pass 1 attempts everything, pass 2 finds nothing new and terminates
	assert.Equal(t, 2, scanner.calls)
}

func TestRunDedupsAcrossCriteria(t *testing.T) {
	scanner := &fakeScanner{passes: [][]jobs.Listing{listings("a", "b")}}
	applier := &fakeApplier{}
	e := newEngine(scanner, applier)

	first := e.Run(context.Background(), criteria, 1)
	second := e.Run(context.Background(), jobs.Criteria{Title: "SRE", Location: "Remote"}, 2)

	assert.Equal(t, 1, first.Applied)
	assert.Equal(t, 1, second.Applied, "only the id unseen by the first criteria is attempted")
	assert.Equal(t, []string{"a", "b"}, applier.attempts)
}

func TestRunCapNeverExceeded(t *testing.T) {
	for cap := 0; cap <= 6; cap++ {
		t.Run(fmt.Sprintf("cap_%d", cap), func(t *testing.T) {
			scanner := &fakeScanner{passes: [][]jobs.Listing{listings("a", "b", "c", "d")}}
			applier := &fakeApplier{}

			stats := newEngine(scanner, applier).Run(context.Background(), criteria, cap)

			assert.LessOrEqual(t, stats.Applied, cap)
		})
	}
}
