package alerts

import (
	"strings"
	"testing"
	"time"

	"btc-probo-bot/internal/types"
)

func sampleAdvisory() (*types.PredictionResult, *types.MarketSnapshot, types.ConfidenceAssessment) {
	res := &types.PredictionResult{
		CurrentPrice:    64200.50,
		AvgDeltaPerHour: 55.25,
		HoursRemaining:  4,
		ProjectedPrice:  64421.50,
		Sentiment:       0.125,
		TargetPrice:     64400,
		TargetTime:      "14:00",
		Vote:            types.VoteYes,
	}
	snap := &types.MarketSnapshot{
		Price:       64200.50,
		LatestClose: 64180,
		Conditions: types.MarketConditions{
			BullishTrend: true,
			RSI:          58.2,
			EMA20:        64100,
			EMA50:        63800,
		},
		Sentiment: 0.125,
	}
	assess := types.ConfidenceAssessment{TrustSignals: 3, CautionFlags: 1, Label: types.LabelGo}
	return res, snap, assess
}

func TestAdvisoryMessage(t *testing.T) {
	res, snap, assess := sampleAdvisory()
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	msg := AdvisoryMessage(res, snap, assess, now)

	for _, want := range []string{
		"*YES*",
		"*GO*",
		"19:30 IST", // 14:00 UTC rendered on the IST clock
		"64421.50",
		"Trust signals: 3",
		"Caution flags: 1",
		"bullish",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected message to contain %q\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "overbought") || strings.Contains(msg, "oversold") {
		t.Error("Expected no RSI zone markers for a mid-band reading")
	}
}

func TestAdvisoryMessageSkipAdvice(t *testing.T) {
	res, snap, assess := sampleAdvisory()
	assess.Label = types.LabelSkip
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	msg := AdvisoryMessage(res, snap, assess, now)
	if !strings.Contains(msg, "sit this one out") {
		t.Errorf("Expected SKIP advice line\n%s", msg)
	}
}

func TestAutoAlertMessageHeader(t *testing.T) {
	res, snap, assess := sampleAdvisory()
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	block := time.Date(2026, 3, 5, 15, 40, 0, 0, IST)

	msg := AutoAlertMessage(block, res, snap, assess, now)
	if !strings.HasPrefix(msg, "*Auto alert for 15:40 IST block*") {
		t.Errorf("Expected block header, got\n%s", msg)
	}
}
