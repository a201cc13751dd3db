package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Barkat444/HireMeMaybe/internal/config"
	"github.com/Barkat444/HireMeMaybe/internal/logger"
	"github.com/Barkat444/HireMeMaybe/internal/naukri"
	"github.com/Barkat444/HireMeMaybe/internal/reporter"
	"github.com/Barkat444/HireMeMaybe/internal/runner"
	"github.com/Barkat444/HireMeMaybe/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Paths.DebugDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Infof("🔧 Config loaded. Titles: %v, locations: %v, interval: %dh",
		cfg.Search.Titles, cfg.Search.Locations, cfg.Run.IntervalHours)

	var rep *reporter.Reporter
	if cfg.ReporterEnabled() {
		rep, err = reporter.New(cfg.Telegram.Token, cfg.Telegram.ChatID, log)
		if err != nil {
			log.Warnf("Telegram reporting disabled: %v", err)
		} else {
			log.Info("🤖 Telegram reporter initialized")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := runner.New(cfg, log, rep)
	log.Info("🚀 Starting Naukri bot...")

	if cfg.Run.IntervalHours <= 0 {
		if err := r.RunOnce(ctx); err != nil {
			log.Errorf("Run failed: %v", err)
			os.Exit(1)
		}
		return
	}

	interval := time.Duration(cfg.Run.IntervalHours) * time.Hour
	scheduler.Every(ctx, interval, "naukri bot", log, func(ctx context.Context) {
		if err := r.RunOnce(ctx); err != nil {
			// a dead login is worth flagging loudly, but the scheduler keeps
			// going: credentials may work again on the next interval
			if errors.Is(err, naukri.ErrAuthExhausted) {
				log.Errorf("🔒 Login failed on every flow: %v", err)
				return
			}
			log.Errorf("Run failed: %v", err)
		}
	})
}
