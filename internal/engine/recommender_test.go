package engine

import (
	"errors"
	"testing"
	"time"

	"btc-probo-bot/internal/types"
)

func TestResolveTargetLaterToday(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	target, err := ResolveTarget(now, "19:30")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := time.Date(2026, 3, 5, 19, 30, 0, 0, time.UTC)
	if !target.Equal(want) {
		t.Errorf("Expected %v, got %v", want, target)
	}
}

func TestResolveTargetRollsToTomorrow(t *testing.T) {
	now := time.Date(2026, 3, 5, 22, 0, 0, 0, time.UTC)

	target, err := ResolveTarget(now, "08:00")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := time.Date(2026, 3, 6, 8, 0, 0, 0, time.UTC)
	if !target.Equal(want) {
		t.Errorf("Expected %v, got %v", want, target)
	}
}

func TestResolveTargetInvalidFormat(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	for _, bad := range []string{"25:00", "7pm", "", "19-30"} {
		_, err := ResolveTarget(now, bad)
		if !errors.Is(err, types.ErrInvalidTimeFormat) {
			t.Errorf("Expected ErrInvalidTimeFormat for %q, got %v", bad, err)
		}
	}
}

func TestHoursUntilRoundsToTwoDecimals(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	target := now.Add(8*time.Hour + 20*time.Minute)

	if got := HoursUntil(now, target, 0.25); got != 8.33 {
		t.Errorf("Expected 8.33 hours, got %v", got)
	}
}

func TestHoursUntilClampsToMinimum(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	// 10 minutes rounds to 0.17, below the 0.25 floor.
	target := now.Add(10 * time.Minute)
	if got := HoursUntil(now, target, 0.25); got != 0.25 {
		t.Errorf("Expected clamp to 0.25, got %v", got)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		projected float64
		target    float64
		sentiment float64
		want      types.Vote
	}{
		{"projection clears target", 65100, 65000, 0.1, types.VoteYes},
		{"projection exactly on target", 65000, 65000, 0, types.VoteYes},
		{"sentiment at the floor", 65100, 65000, -0.1, types.VoteYes},
		{"projection short of target", 64900, 65000, 0.5, types.VoteNo},
		{"sentiment below the floor", 65100, 65000, -0.11, types.VoteNo},
	}
	for _, tt := range tests {
		if got := Decide(tt.projected, tt.target, tt.sentiment, -0.1); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}
