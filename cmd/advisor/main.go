package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"btc-probo-bot/internal/advlog"
	"btc-probo-bot/internal/alerts"
	"btc-probo-bot/internal/engine"
	"btc-probo-bot/internal/logger"
	"btc-probo-bot/internal/market"
	"btc-probo-bot/internal/news"
	"btc-probo-bot/internal/notify"
	"btc-probo-bot/internal/store"
	"btc-probo-bot/internal/trace"
	"btc-probo-bot/internal/types"

	"github.com/joho/godotenv"
)

type output struct {
	Prediction *types.PredictionResult    `json:"prediction"`
	Market     *types.MarketSnapshot      `json:"market"`
	Confidence types.ConfidenceAssessment `json:"confidence"`
}

func main() {
	target := flag.Float64("target", 0, "Probo target price in USDT (required)")
	at := flag.String("at", "", "target time as HH:MM IST (required)")
	configPath := flag.String("config", "config.yaml", "path to config file")
	send := flag.Bool("notify", false, "also push the advisory to Telegram")
	flag.Parse()

	if *target <= 0 || *at == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	ctx := context.Background()
	defer func() { _ = trace.Shutdown(ctx) }()

	cfg, err := store.LoadConfig(*configPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		os.Exit(1)
	}

	now := time.Now()
	hhmmUTC, err := alerts.UTCClockFromIST(*at, now)
	if err != nil {
		logger.ErrorWithErr(ctx, "Invalid target time, expected HH:MM", err, "at", *at)
		os.Exit(1)
	}

	mkt := market.NewBinance(cfg.Interval, 15*time.Second)
	sentiment := news.NewService(
		news.NewScraper(cfg.SentimentTimeout()),
		cfg.Sentiment.MaxHeadlines,
		cfg.SentimentTTL(),
	)
	eng := engine.New(cfg.EngineParams(), mkt, sentiment)

	res, err := eng.Recommend(ctx, *target, hhmmUTC, now)
	if err != nil {
		logger.ErrorWithErr(ctx, "Recommendation failed", err)
		os.Exit(1)
	}
	snap, err := eng.Snapshot(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Market snapshot failed", err)
		os.Exit(1)
	}
	assess := eng.Assess(res, snap)

	if err := advlog.Append(cfg.Symbol, res, assess); err != nil {
		logger.Warn(ctx, "Failed to append advisory log", "error", err)
	}

	b, _ := json.MarshalIndent(output{Prediction: res, Market: snap, Confidence: assess}, "", "  ")
	fmt.Println(string(b))

	if *send {
		tg, err := notify.NewTelegramFromEnv()
		if err != nil {
			logger.ErrorWithErr(ctx, "Telegram setup failed", err)
			os.Exit(1)
		}
		if tg == nil {
			logger.Warn(ctx, "TELEGRAM_BOT_TOKEN not set, skipping notification")
			return
		}
		tg.Notify(ctx, alerts.AdvisoryMessage(res, snap, assess, now))
	}
}
