package engine

import (
	"context"
	"fmt"
	"time"

	"btc-probo-bot/internal/logger"
	"btc-probo-bot/internal/ta"
	"btc-probo-bot/internal/trace"
	"btc-probo-bot/internal/types"
)

// MarketData supplies candles and the spot price. Implementations own
// their timeout/retry policy; the engine only propagates failures.
type MarketData interface {
	RecentCandles(ctx context.Context, symbol string, limit int) ([]types.Candle, error)
	CurrentPrice(ctx context.Context, symbol string) (float64, error)
}

// SentimentSource returns a polarity score in [-1, 1]; 0 means neutral
// or no data. Caching is the implementation's concern.
type SentimentSource interface {
	Sentiment(ctx context.Context, query string) (float64, error)
}

// Params configures the recommendation engine. Built from store.Config
// in the entrypoints; every threshold here is named configuration.
type Params struct {
	Symbol         string
	CandleLimit    int
	Lookback       int
	MinHours       float64
	RSIPeriod      int
	EMAFast        int
	EMASlow        int
	MinSentiment   float64
	SentimentQuery string
	Advisor        AdvisorConfig
}

// Engine fuses trend extrapolation, indicator interpretation and news
// sentiment into a YES/NO vote recommendation. It performs no I/O of
// its own beyond delegating to its collaborators.
type Engine struct {
	p      Params
	market MarketData
	sent   SentimentSource
}

func New(p Params, market MarketData, sent SentimentSource) *Engine {
	return &Engine{p: p, market: market, sent: sent}
}

// Recommend resolves the target time, projects the price over the
// remaining hours and applies the vote rule. now is always supplied by
// the caller so the resolution stays testable.
func (e *Engine) Recommend(ctx context.Context, targetPrice float64, targetHHMM string, now time.Time) (*types.PredictionResult, error) {
	ctx, span := trace.StartSpan(ctx, "recommend-vote")
	defer span.End()

	if targetPrice <= 0 {
		return nil, fmt.Errorf("target price must be > 0, got %.2f", targetPrice)
	}

	target, err := ResolveTarget(now, targetHHMM)
	if err != nil {
		return nil, err
	}
	hours := HoursUntil(now.UTC(), target, e.p.MinHours)

	sentiment, err := e.sent.Sentiment(ctx, e.p.SentimentQuery)
	if err != nil {
		return nil, fmt.Errorf("sentiment fetch failed: %w", err)
	}

	candles, err := e.market.RecentCandles(ctx, e.p.Symbol, e.p.Lookback)
	if err != nil {
		return nil, err
	}
	current, err := e.market.CurrentPrice(ctx, e.p.Symbol)
	if err != nil {
		return nil, err
	}

	proj, err := Project(candles, e.p.Lookback, current, hours)
	if err != nil {
		return nil, err
	}

	vote := Decide(proj.Projected, targetPrice, sentiment, e.p.MinSentiment)

	res := &types.PredictionResult{
		CurrentPrice:    round2(proj.Current),
		AvgDeltaPerHour: proj.AvgDelta,
		HoursRemaining:  hours,
		ProjectedPrice:  proj.Projected,
		Sentiment:       round3(sentiment),
		TargetPrice:     targetPrice,
		TargetTime:      target.Format("15:04"),
		Vote:            vote,
	}

	logger.Info(ctx, "Vote recommendation",
		"symbol", e.p.Symbol,
		"vote", res.Vote,
		"current", res.CurrentPrice,
		"projected", res.ProjectedPrice,
		"target", res.TargetPrice,
		"hours_remaining", res.HoursRemaining,
		"sentiment", res.Sentiment,
	)
	return res, nil
}

// Snapshot fetches the full candle history and derives the current
// market conditions plus sentiment, for display and for Assess.
func (e *Engine) Snapshot(ctx context.Context) (*types.MarketSnapshot, error) {
	ctx, span := trace.StartSpan(ctx, "market-snapshot")
	defer span.End()

	candles, err := e.market.RecentCandles(ctx, e.p.Symbol, e.p.CandleLimit)
	if err != nil {
		return nil, err
	}
	snap, err := ta.LatestSnapshot(candles, e.p.RSIPeriod, e.p.EMAFast, e.p.EMASlow)
	if err != nil {
		return nil, err
	}
	conditions, err := InterpretConditions(snap, e.p.Advisor.RSILow, e.p.Advisor.RSIHigh)
	if err != nil {
		return nil, err
	}
	price, err := e.market.CurrentPrice(ctx, e.p.Symbol)
	if err != nil {
		return nil, err
	}
	sentiment, err := e.sent.Sentiment(ctx, e.p.SentimentQuery)
	if err != nil {
		return nil, fmt.Errorf("sentiment fetch failed: %w", err)
	}

	return &types.MarketSnapshot{
		Price:       price,
		LatestClose: candles[len(candles)-1].Close,
		Conditions:  conditions,
		Sentiment:   round3(sentiment),
	}, nil
}

// Assess labels a prediction using the configured trust/caution
// thresholds and the market snapshot taken alongside it.
func (e *Engine) Assess(res *types.PredictionResult, snap *types.MarketSnapshot) types.ConfidenceAssessment {
	return Assess(e.p.Advisor, *res, snap.Conditions, snap.Sentiment, snap.LatestClose)
}
