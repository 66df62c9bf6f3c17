package engine

import (
	"fmt"
	"math"

	"btc-probo-bot/internal/types"
)

// Projection is the output of the linear price extrapolation.
type Projection struct {
	Projected float64
	AvgDelta  float64
	Current   float64
}

// Project extrapolates price linearly: the mean close-to-close delta
// over the last lookback candles is applied once per hour ahead. No
// mean reversion, no volatility adjustment.
func Project(candles []types.Candle, lookback int, current, hoursAhead float64) (Projection, error) {
	window := candles
	if lookback > 0 && len(window) > lookback {
		window = window[len(window)-lookback:]
	}
	if len(window) < 2 {
		return Projection{}, fmt.Errorf("projection needs 2 candles, got %d: %w", len(window), types.ErrInsufficientData)
	}
	sum := 0.0
	for i := 1; i < len(window); i++ {
		sum += window[i].Close - window[i-1].Close
	}
	avgDelta := sum / float64(len(window)-1)
	projected := current + avgDelta*hoursAhead
	return Projection{
		Projected: round2(projected),
		AvgDelta:  round2(avgDelta),
		Current:   current,
	}, nil
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
