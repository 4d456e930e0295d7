// Command rescan recomputes every pending match with the current settings.
// It is intended to be invoked by an external cron job after the weights or
// thresholds change, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error or at least one match failed.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/lostfound-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lostfound-backend/internal/app"
	"github.com/heartmarshall/lostfound-backend/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config.yaml")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := app.NewServices(logger, cfg, pool)
	svc.Notifier.Start(ctx)

	start := time.Now()
	result, err := svc.Match.ReScanAll(ctx)
	svc.Notifier.Stop()
	if err != nil {
		logger.Error("rescan failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("rescan completed",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("promoted", result.Promoted),
		slog.Int("deleted", result.Deleted),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
		slog.Duration("took", time.Since(start)),
	)

	if result.Failed > 0 {
		os.Exit(1)
	}
}
