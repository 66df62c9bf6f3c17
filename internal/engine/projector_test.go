package engine

import (
	"errors"
	"testing"

	"btc-probo-bot/internal/types"
)

func candlesFromCloses(closes []float64) []types.Candle {
	out := make([]types.Candle, len(closes))
	for i, c := range closes {
		out[i] = types.Candle{Ts: int64(i * 3600), Close: c}
	}
	return out
}

func TestProjectLinearUptrend(t *testing.T) {
	candles := candlesFromCloses([]float64{100, 110, 120})

	proj, err := Project(candles, 10, 120, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if proj.AvgDelta != 10 {
		t.Errorf("Expected avg delta 10, got %v", proj.AvgDelta)
	}
	if proj.Projected != 140 {
		t.Errorf("Expected projected 140, got %v", proj.Projected)
	}
}

func TestProjectDowntrend(t *testing.T) {
	candles := candlesFromCloses([]float64{120, 110, 100})

	proj, err := Project(candles, 10, 100, 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if proj.AvgDelta != -10 {
		t.Errorf("Expected avg delta -10, got %v", proj.AvgDelta)
	}
	if proj.Projected != 70 {
		t.Errorf("Expected projected 70, got %v", proj.Projected)
	}
}

func TestProjectUsesOnlyLookbackWindow(t *testing.T) {
	// Old candles fall hard, recent ones rise; only the window counts.
	closes := []float64{500, 400, 300, 100, 110, 120}
	candles := candlesFromCloses(closes)

	proj, err := Project(candles, 3, 120, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if proj.AvgDelta != 10 {
		t.Errorf("Expected avg delta 10 from the last 3 closes, got %v", proj.AvgDelta)
	}
}

func TestProjectRounding(t *testing.T) {
	candles := candlesFromCloses([]float64{100, 100.1, 100.3})

	proj, err := Project(candles, 10, 100.3, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if proj.AvgDelta != 0.15 {
		t.Errorf("Expected avg delta 0.15, got %v", proj.AvgDelta)
	}
	if proj.Projected != 100.45 {
		t.Errorf("Expected projected 100.45, got %v", proj.Projected)
	}
}

func TestProjectInsufficientData(t *testing.T) {
	_, err := Project(candlesFromCloses([]float64{100}), 10, 100, 1)
	if !errors.Is(err, types.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}
