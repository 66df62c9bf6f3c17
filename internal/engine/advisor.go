package engine

import (
	"math"

	"btc-probo-bot/internal/types"
)

// AdvisorConfig holds the trust/caution thresholds for confidence
// labeling. Zero values are replaced by DefaultAdvisorConfig in
// store.LoadConfig, never here.
type AdvisorConfig struct {
	TrustMaxHours     float64 `yaml:"trust_max_hours"`    // trust when time left is under this
	CautionMinHours   float64 `yaml:"caution_min_hours"`  // caution when time left exceeds this
	StrongSentiment   float64 `yaml:"strong_sentiment"`   // trust when |sentiment| exceeds this
	ConflictSentiment float64 `yaml:"conflict_sentiment"` // caution when |sentiment| is under this
	RSILow            float64 `yaml:"rsi_low"`
	RSIHigh           float64 `yaml:"rsi_high"`
	GoMinTrust        int     `yaml:"go_min_trust"`
	SkipMinCaution    int     `yaml:"skip_min_caution"`
}

func DefaultAdvisorConfig() AdvisorConfig {
	return AdvisorConfig{
		TrustMaxHours:     2,
		CautionMinHours:   3,
		StrongSentiment:   0.2,
		ConflictSentiment: 0.05,
		RSILow:            30,
		RSIHigh:           70,
		GoMinTrust:        3,
		SkipMinCaution:    2,
	}
}

// Assess counts trust signals and caution flags for a prediction and
// labels it. The SKIP check outranks GO once enough caution flags are
// present.
//
// The "clean trend" trust signal is asymmetric: an uptrend counts on
// the EMA cross alone, a downtrend additionally requires the latest
// close under EMA20. Kept as observed; do not symmetrize without a
// product decision.
func Assess(cfg AdvisorConfig, res types.PredictionResult, mkt types.MarketConditions, sentiment, latestClose float64) types.ConfidenceAssessment {
	trust := 0
	if res.HoursRemaining < cfg.TrustMaxHours {
		trust++
	}
	if mkt.BullishTrend || (mkt.EMA20 < mkt.EMA50 && latestClose < mkt.EMA20) {
		trust++
	}
	if math.Abs(sentiment) > cfg.StrongSentiment {
		trust++
	}
	if mkt.RSI >= cfg.RSILow && mkt.RSI <= cfg.RSIHigh {
		trust++
	}

	caution := 0
	if res.HoursRemaining > cfg.CautionMinHours {
		caution++
	}
	if mkt.Overbought || mkt.Oversold {
		caution++
	}
	if math.Abs(sentiment) < cfg.ConflictSentiment {
		caution++
	}

	label := types.LabelMixed
	switch {
	case trust >= cfg.GoMinTrust && caution < cfg.SkipMinCaution:
		label = types.LabelGo
	case caution >= cfg.SkipMinCaution:
		label = types.LabelSkip
	}

	return types.ConfidenceAssessment{TrustSignals: trust, CautionFlags: caution, Label: label}
}
