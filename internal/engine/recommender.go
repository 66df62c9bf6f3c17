package engine

import (
	"fmt"
	"time"

	"btc-probo-bot/internal/types"
)

// ResolveTarget maps an HH:MM time-of-day to its next occurrence in
// UTC: today if the time has not passed yet relative to now, otherwise
// tomorrow. Pure; now is always supplied by the caller.
func ResolveTarget(now time.Time, hhmm string) (time.Time, error) {
	tod, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", hhmm, types.ErrInvalidTimeFormat)
	}
	now = now.UTC()
	target := time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)
	if target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target, nil
}

// HoursUntil returns the hours between now and target, rounded to two
// decimals and clamped to minHours so near-immediate targets never
// degenerate the extrapolation.
func HoursUntil(now, target time.Time, minHours float64) float64 {
	h := round2(target.Sub(now).Hours())
	if h < minHours {
		return minHours
	}
	return h
}

// Decide applies the vote rule: YES only when the trend alone clears
// the target and sentiment is not meaningfully negative.
func Decide(projected, targetPrice, sentiment, minSentiment float64) types.Vote {
	if projected >= targetPrice && sentiment >= minSentiment {
		return types.VoteYes
	}
	return types.VoteNo
}
