package alerts

import (
	"fmt"
	"strings"
	"time"

	"btc-probo-bot/internal/types"
)

// AdvisoryMessage renders the full recommendation as a Telegram
// Markdown message. Times are shown in IST.
func AdvisoryMessage(res *types.PredictionResult, snap *types.MarketSnapshot, assess types.ConfidenceAssessment, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*BTC Probo Advisory*\n")
	fmt.Fprintf(&b, "Will BTC reach %.2f by %s IST?\n\n", res.TargetPrice, ISTClockFromUTC(res.TargetTime, now))

	fmt.Fprintf(&b, "Vote: *%s*  |  Confidence: *%s*\n\n", res.Vote, assess.Label)

	fmt.Fprintf(&b, "Current price: %.2f\n", res.CurrentPrice)
	fmt.Fprintf(&b, "Projected price: %.2f\n", res.ProjectedPrice)
	fmt.Fprintf(&b, "Avg move per hour: %.2f\n", res.AvgDeltaPerHour)
	fmt.Fprintf(&b, "Hours remaining: %.2f\n", res.HoursRemaining)
	fmt.Fprintf(&b, "News sentiment: %.3f\n\n", res.Sentiment)

	c := snap.Conditions
	fmt.Fprintf(&b, "RSI: %.2f  |  EMA20: %.2f  |  EMA50: %.2f\n", c.RSI, c.EMA20, c.EMA50)
	fmt.Fprintf(&b, "Trend: %s", trendWord(c))
	if c.Overbought {
		b.WriteString("  |  overbought")
	}
	if c.Oversold {
		b.WriteString("  |  oversold")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Trust signals: %d  |  Caution flags: %d\n", assess.TrustSignals, assess.CautionFlags)
	b.WriteString(labelAdvice(assess.Label))

	return b.String()
}

// AutoAlertMessage prefixes the advisory with the block it was
// generated for.
func AutoAlertMessage(block time.Time, res *types.PredictionResult, snap *types.MarketSnapshot, assess types.ConfidenceAssessment, now time.Time) string {
	header := fmt.Sprintf("*Auto alert for %s IST block*\n\n", ISTClock(block))
	return header + AdvisoryMessage(res, snap, assess, now)
}

func trendWord(c types.MarketConditions) string {
	if c.BullishTrend {
		return "bullish"
	}
	return "bearish"
}

func labelAdvice(label types.ConfidenceLabel) string {
	switch label {
	case types.LabelGo:
		return "Signals line up. Reasonable spot to act on the vote."
	case types.LabelSkip:
		return "Too many warning signs. Better to sit this one out."
	default:
		return "Signals conflict. Act only with small size, if at all."
	}
}
