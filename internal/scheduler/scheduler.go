// Package scheduler repeats a task on a fixed interval. Runs never
// overlap: the next tick starts only after the previous run returned,
// which matters because each run owns the single browser session.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Every runs task immediately, then again each time interval elapses,
// until ctx is cancelled. The task's own duration does not shift the
// ticker; a run longer than the interval simply absorbs the missed tick.
func Every(ctx context.Context, interval time.Duration, name string, log *zap.SugaredLogger, task func(context.Context)) {
	run := func(iteration int) {
		start := time.Now()
		log.Infof("⏰ Starting %s run #%d", name, iteration)
		task(ctx)
		log.Infof("Finished %s run #%d in %s, next run at %s",
			name, iteration, time.Since(start).Round(time.Second),
			time.Now().Add(interval).Format("15:04:05"))
	}

	run(1)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for iteration := 2; ; iteration++ {
		select {
		case <-ctx.Done():
			log.Infof("Scheduler for %s stopped: %v", name, ctx.Err())
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				log.Infof("Scheduler for %s stopped: %v", name, ctx.Err())
				return
			}
			run(iteration)
		}
	}
}
