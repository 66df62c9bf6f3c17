package engine

import (
	"fmt"
	"math"

	"btc-probo-bot/internal/types"
)

// InterpretConditions classifies the latest indicator snapshot into
// trend and RSI-zone flags. rsiLow/rsiHigh are the oversold/overbought
// cutoffs (defaults 30/70); a reading inside [rsiLow, rsiHigh] sets
// neither flag.
func InterpretConditions(snap types.IndicatorSnapshot, rsiLow, rsiHigh float64) (types.MarketConditions, error) {
	if math.IsNaN(snap.RSI) || math.IsNaN(snap.EMA20) || math.IsNaN(snap.EMA50) {
		return types.MarketConditions{}, fmt.Errorf("rsi=%v ema20=%v ema50=%v: %w", snap.RSI, snap.EMA20, snap.EMA50, types.ErrMissingIndicator)
	}
	return types.MarketConditions{
		BullishTrend: snap.EMA20 > snap.EMA50,
		Oversold:     snap.RSI < rsiLow,
		Overbought:   snap.RSI > rsiHigh,
		RSI:          snap.RSI,
		EMA20:        snap.EMA20,
		EMA50:        snap.EMA50,
	}, nil
}
