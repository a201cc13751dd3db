// Package runner executes one full bot iteration: launch a browser, log
// in, update the profile, work through the application cap, share early
// access interest, then report. Each iteration owns its browser session
// and carries no state into the next one.
package runner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Barkat444/HireMeMaybe/internal/browser"
	"github.com/Barkat444/HireMeMaybe/internal/config"
	"github.com/Barkat444/HireMeMaybe/internal/engine"
	"github.com/Barkat444/HireMeMaybe/internal/jobs"
	"github.com/Barkat444/HireMeMaybe/internal/naukri"
	"github.com/Barkat444/HireMeMaybe/internal/reporter"
	"github.com/Barkat444/HireMeMaybe/utils"
)

type Runner struct {
	cfg *config.Config
	log *zap.SugaredLogger
	rep *reporter.Reporter
}

func New(cfg *config.Config, log *zap.SugaredLogger, rep *reporter.Reporter) *Runner {
	return &Runner{cfg: cfg, log: log, rep: rep}
}

// combos expands the configured titles and locations into the ordered list
// of search criteria one run works through.
func combos(s config.Search) []jobs.Criteria {
	out := make([]jobs.Criteria, 0, len(s.Titles)*len(s.Locations))
	for _, title := range s.Titles {
		for _, location := range s.Locations {
			out = append(out, jobs.Criteria{
				Title:      title,
				Location:   location,
				Experience: s.Experience,
			})
		}
	}
	return out
}

// RunOnce performs a single iteration. The returned error is fatal for the
// iteration (browser launch or login failure); everything past login
// degrades per-stage and still produces a summary.
func (r *Runner) RunOnce(ctx context.Context) error {
	shots := utils.NewScreenshotDebugger(r.cfg.Paths.DebugDir, r.log)
	shots.Clear()

	mgr, err := browser.New(browser.Options{Headless: r.cfg.Headless})
	if err != nil {
		r.rep.SendError(err)
		return fmt.Errorf("launch browser: %w", err)
	}
	defer mgr.Close()

	page, err := mgr.NewPage()
	if err != nil {
		r.rep.SendError(err)
		return fmt.Errorf("open page: %w", err)
	}

	client := naukri.NewClient(page, r.log, shots)

	if err := client.Authenticate(ctx, r.cfg.Credentials); err != nil {
		r.rep.SendError(err)
		return err
	}

	var summary jobs.Summary

	if r.cfg.Run.RotateProfile {
		if headlines, err := r.cfg.LoadHeadlines(); err != nil {
			r.log.Warnf("Skipping headline rotation: %v", err)
		} else {
			summary.HeadlineRotated = client.RotateHeadline(ctx, headlines)
		}
		summary.ResumeUpdated = client.UpdateResume(ctx, r.cfg.Paths.Resume)
	}

	if r.cfg.Run.ApplyJobs {
		// one engine for the whole iteration: a listing surfacing under
		// several title/location combos is only ever attempted once
		eng := engine.New(client, client, r.log)
		remaining := r.cfg.Run.MaxApplications

		for _, criteria := range combos(r.cfg.Search) {
			if remaining <= 0 || ctx.Err() != nil {
				break
			}
			stats := eng.Run(ctx, criteria, remaining)
			summary.AppliedCount += stats.Applied
			summary.SkippedCount += stats.Skipped
			summary.FailedCount += stats.Failed
			remaining -= stats.Applied
		}
	}

	if r.cfg.Run.EarlyAccess {
		summary.EarlyAccessShared = client.ExpressInterest(ctx, r.cfg.Run.EarlyAccessLimit)
	}

	r.log.Infof("🏁 Run complete: %s", summary)
	r.rep.SendSummary(summary)
	return nil
}
