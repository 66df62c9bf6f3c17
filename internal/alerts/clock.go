package alerts

import "time"

// IST is the display timezone. Probo targets are quoted in Indian
// Standard Time; the engine itself works in UTC.
var IST = time.FixedZone("IST", 19800)

// NextBlock rounds now up to the next blockMinutes boundary in IST.
// A time already on a boundary advances to the following block.
func NextBlock(now time.Time, blockMinutes int) time.Time {
	t := now.In(IST)
	block := time.Duration(blockMinutes) * time.Minute
	truncated := t.Truncate(block)
	return truncated.Add(block)
}

// UTCClock formats a time as HH:MM on the UTC clock, the form the
// engine's target resolution expects.
func UTCClock(t time.Time) string {
	return t.UTC().Format("15:04")
}

// ISTClock formats a time as HH:MM on the IST clock for display.
func ISTClock(t time.Time) string {
	return t.In(IST).Format("15:04")
}

// ISTClockFromUTC re-renders a UTC HH:MM string in IST, anchored to
// the given date. Returns the input unchanged if it does not parse.
func ISTClockFromUTC(hhmm string, ref time.Time) string {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	r := ref.UTC()
	t := time.Date(r.Year(), r.Month(), r.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	return t.In(IST).Format("15:04")
}

// UTCClockFromIST converts an IST HH:MM string to the UTC clock,
// anchored to the given date.
func UTCClockFromIST(hhmm string, ref time.Time) (string, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return "", err
	}
	r := ref.In(IST)
	t := time.Date(r.Year(), r.Month(), r.Day(), parsed.Hour(), parsed.Minute(), 0, 0, IST)
	return t.UTC().Format("15:04"), nil
}
