package ta

import (
	"fmt"
	"math"

	"btc-probo-bot/internal/types"
)

// Series functions return one value per input close, aligned by index.
// Entries are NaN until the indicator has enough history.

// EMASeries computes an exponential moving average with smoothing
// 2/(period+1), seeded by the simple moving average of the first
// period closes.
func EMASeries(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("ema period %d: %w", period, types.ErrInsufficientData)
	}
	if len(closes) < period {
		return nil, fmt.Errorf("ema(%d) needs %d closes, got %d: %w", period, period, len(closes), types.ErrInsufficientData)
	}
	out := make([]float64, len(closes))
	for i := 0; i < period-1; i++ {
		out[i] = math.NaN()
	}
	seed := 0.0
	for i := 0; i < period; i++ {
		seed += closes[i]
	}
	out[period-1] = seed / float64(period)
	k := 2.0 / float64(period+1)
	for i := period; i < len(closes); i++ {
		out[i] = closes[i]*k + out[i-1]*(1-k)
	}
	return out, nil
}

// RSISeries computes Wilder's smoothed RSI. The first defined value sits
// at index period (it consumes the first period deltas); earlier entries
// are NaN.
func RSISeries(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rsi period %d: %w", period, types.ErrInsufficientData)
	}
	if len(closes) < period+1 {
		return nil, fmt.Errorf("rsi(%d) needs %d closes, got %d: %w", period, period+1, len(closes), types.ErrInsufficientData)
	}
	out := make([]float64, len(closes))
	for i := 0; i < period; i++ {
		out[i] = math.NaN()
	}
	avgGain, avgLoss := 0.0, 0.0
	for i := 1; i <= period; i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			avgGain += d
		} else {
			avgLoss -= d
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiFrom(avgGain, avgLoss)
	for i := period + 1; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if d > 0 {
			gain = d
		} else {
			loss = -d
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiFrom(avgGain, avgLoss)
	}
	return out, nil
}

func rsiFrom(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50.0
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - (100.0 / (1.0 + rs))
}

// LatestSnapshot derives the most recent indicator values from a candle
// series. It fails when the series is shorter than the largest window.
func LatestSnapshot(candles []types.Candle, rsiPeriod, emaFast, emaSlow int) (types.IndicatorSnapshot, error) {
	need := emaSlow
	if rsiPeriod+1 > need {
		need = rsiPeriod + 1
	}
	if len(candles) < need {
		return types.IndicatorSnapshot{}, fmt.Errorf("snapshot needs %d candles, got %d: %w", need, len(candles), types.ErrInsufficientData)
	}
	closes := Closes(candles)
	rsi, err := RSISeries(closes, rsiPeriod)
	if err != nil {
		return types.IndicatorSnapshot{}, err
	}
	fast, err := EMASeries(closes, emaFast)
	if err != nil {
		return types.IndicatorSnapshot{}, err
	}
	slow, err := EMASeries(closes, emaSlow)
	if err != nil {
		return types.IndicatorSnapshot{}, err
	}
	n := len(closes) - 1
	return types.IndicatorSnapshot{RSI: rsi[n], EMA20: fast[n], EMA50: slow[n]}, nil
}

// Closes extracts the closing prices of a candle series.
func Closes(candles []types.Candle) []float64 {
	cl := make([]float64, len(candles))
	for i, c := range candles {
		cl[i] = c.Close
	}
	return cl
}
