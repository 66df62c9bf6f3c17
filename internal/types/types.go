package types

type Candle struct {
	Ts                          int64
	Open, High, Low, Close, Vol float64
}

// IndicatorSnapshot carries the latest indicator values for a candle series.
// Values are NaN until the underlying window has enough history.
type IndicatorSnapshot struct {
	RSI   float64
	EMA20 float64
	EMA50 float64
}

// MarketConditions classifies an IndicatorSnapshot. Oversold and
// Overbought are mutually exclusive; both are false for RSI in [30,70].
type MarketConditions struct {
	BullishTrend bool    `json:"bullish_trend"`
	Oversold     bool    `json:"oversold"`
	Overbought   bool    `json:"overbought"`
	RSI          float64 `json:"rsi"`
	EMA20        float64 `json:"ema_20"`
	EMA50        float64 `json:"ema_50"`
}

type Vote string

const (
	VoteYes Vote = "YES"
	VoteNo  Vote = "NO"
)

// PredictionResult is the engine's output for one recommendation request.
// Money and hour fields are rounded to 2 decimals, sentiment to 3.
type PredictionResult struct {
	CurrentPrice    float64 `json:"current_price"`
	AvgDeltaPerHour float64 `json:"avg_delta_per_hour"`
	HoursRemaining  float64 `json:"hours_remaining"`
	ProjectedPrice  float64 `json:"projected_price"`
	Sentiment       float64 `json:"sentiment"`
	TargetPrice     float64 `json:"target_price"`
	TargetTime      string  `json:"target_time"` // resolved HH:MM, UTC
	Vote            Vote    `json:"vote"`
}

type ConfidenceLabel string

const (
	LabelGo    ConfidenceLabel = "GO"
	LabelSkip  ConfidenceLabel = "SKIP"
	LabelMixed ConfidenceLabel = "MIXED"
)

type ConfidenceAssessment struct {
	TrustSignals int             `json:"trust_signals"`
	CautionFlags int             `json:"caution_flags"`
	Label        ConfidenceLabel `json:"label"`
}

// MarketSnapshot is the display/alerting view of current market state.
type MarketSnapshot struct {
	Price       float64          `json:"price"`
	LatestClose float64          `json:"latest_close"`
	Conditions  MarketConditions `json:"conditions"`
	Sentiment   float64          `json:"sentiment"`
}
