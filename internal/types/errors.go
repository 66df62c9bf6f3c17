package types

import "errors"

// Error taxonomy shared across the engine and its collaborators.
// Callers match with errors.Is; packages wrap these with context.
var (
	// ErrInsufficientData: fewer candles than an indicator or
	// projection window requires.
	ErrInsufficientData = errors.New("insufficient candle data")

	// ErrMissingIndicator: an indicator value is NaN where the
	// interpreter needs a defined one.
	ErrMissingIndicator = errors.New("indicator value missing")

	// ErrInvalidTimeFormat: a target time did not parse as HH:MM.
	ErrInvalidTimeFormat = errors.New("invalid time format, want HH:MM")

	// ErrDataUnavailable: a market data fetch or parse failed.
	ErrDataUnavailable = errors.New("market data unavailable")
)
