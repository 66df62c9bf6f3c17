package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"btc-probo-bot/internal/alerts"
	"btc-probo-bot/internal/logger"
	"btc-probo-bot/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() { _ = trace.Shutdown(context.Background()) }()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}
	compressOldLogs(ctx)
	if !cfg.Alerts.Enabled {
		logger.Error(ctx, "alerts.enabled is false - nothing to do; use the advisor command for one-shot runs")
		os.Exit(1)
	}

	eng := buildEngine(cfg)
	notifier := buildNotifier(ctx)

	srv := startHealthServer(ctx, cfg.Alerts.HealthAddr)

	runner := alerts.NewRunner(
		eng,
		notifier,
		cfg.Symbol,
		cfg.Alerts.TargetPrice,
		time.Duration(cfg.Alerts.PollMinutes)*time.Minute,
		cfg.Alerts.BlockMinutes,
	)
	go runner.Run(ctx)

	logger.Info(ctx, "Bot started", "symbol", cfg.Symbol, "interval", cfg.Interval)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	logger.Info(ctx, "Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
