package news

func loadPositiveWords() map[string]bool {
	words := []string{
		"adoption", "advance", "advances", "approval", "approved", "boom",
		"breakout", "bull", "bullish", "climb", "climbs", "confidence",
		"gain", "gains", "growth", "high", "higher", "institutional",
		"jump", "jumps", "milestone", "momentum", "optimism", "optimistic",
		"outperform", "positive", "rally", "rallies", "rebound", "record",
		"recover", "recovery", "rise", "rises", "rising", "soar", "soars",
		"strong", "support", "surge", "surges", "upgrade", "uptrend", "win",
	}
	return toSet(words)
}

func loadNegativeWords() map[string]bool {
	words := []string{
		"ban", "banned", "bear", "bearish", "breakdown", "collapse",
		"concern", "concerns", "crackdown", "crash", "crashes", "decline",
		"declines", "dip", "dips", "doubt", "down", "downgrade", "downtrend",
		"drop", "drops", "dump", "fall", "falls", "falling", "fear", "fears",
		"fraud", "hack", "hacked", "lawsuit", "liquidation", "loss", "losses",
		"low", "lower", "negative", "panic", "plunge", "plunges", "risk",
		"scam", "selloff", "sink", "sinks", "slump", "tumble", "tumbles",
		"warning", "weak", "worries",
	}
	return toSet(words)
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
