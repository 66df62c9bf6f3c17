package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"btc-probo-bot/internal/advlog"
	"btc-probo-bot/internal/engine"
	"btc-probo-bot/internal/logger"
	"btc-probo-bot/internal/market"
	"btc-probo-bot/internal/news"
	"btc-probo-bot/internal/notify"
	"btc-probo-bot/internal/store"
	"btc-probo-bot/internal/trace"

	"github.com/joho/godotenv"
)

// initializeSystem initializes environment, logger and tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

// compressOldLogs gzips old advisory log files if retention is configured
func compressOldLogs(ctx context.Context) {
	if v := os.Getenv("ADVISOR_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if err := advlog.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old advisory logs", "error", err)
		}
	}
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// buildEngine wires the market source and sentiment service into the engine
func buildEngine(cfg *store.Config) *engine.Engine {
	mkt := market.NewBinance(cfg.Interval, 15*time.Second)
	sentiment := news.NewService(
		news.NewScraper(cfg.SentimentTimeout()),
		cfg.Sentiment.MaxHeadlines,
		cfg.SentimentTTL(),
	)
	return engine.New(cfg.EngineParams(), mkt, sentiment)
}

// buildNotifier returns the Telegram notifier, or nil when unconfigured
func buildNotifier(ctx context.Context) *notify.Telegram {
	tg, err := notify.NewTelegramFromEnv()
	if err != nil {
		logger.ErrorWithErr(ctx, "Telegram setup failed, alerts will not be delivered", err)
		return nil
	}
	if tg == nil {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN not set - alerts will only be logged")
	}
	return tg
}

// startHealthServer serves liveness probes on the configured address
func startHealthServer(ctx context.Context, addr string) *http.Server {
	mux := http.NewServeMux()
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}
	mux.HandleFunc("/", handler)
	mux.HandleFunc("/healthz", handler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorWithErr(ctx, "Health server stopped", err)
		}
	}()
	logger.Info(ctx, "Health server listening", "addr", addr)
	return srv
}
