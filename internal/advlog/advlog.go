package advlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"btc-probo-bot/internal/types"
)

var mu sync.Mutex

// Entry is one advisory as it was issued, flattened for JSONL.
type Entry struct {
	Time           string  `json:"time"`
	Symbol         string  `json:"symbol"`
	Vote           string  `json:"vote"`
	Label          string  `json:"label"`
	TargetPrice    float64 `json:"target_price"`
	TargetTime     string  `json:"target_time"`
	CurrentPrice   float64 `json:"current_price"`
	ProjectedPrice float64 `json:"projected_price"`
	HoursRemaining float64 `json:"hours_remaining"`
	Sentiment      float64 `json:"sentiment"`
	TrustSignals   int     `json:"trust_signals"`
	CautionFlags   int     `json:"caution_flags"`
}

func logDir() string {
	if v := os.Getenv("ADVISOR_LOG_DIR"); v != "" {
		return v
	}
	return "logs"
}

func dailyFilepath(t time.Time) string {
	d := t.In(time.FixedZone("IST", 19800)).Format("2006-01-02")
	return filepath.Join(logDir(), d+".txt")
}

// Append records an advisory in the current day's file. One JSON
// object per line.
func Append(symbol string, res *types.PredictionResult, assess types.ConfidenceAssessment) error {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now().In(time.FixedZone("IST", 19800))
	e := Entry{
		Time:           now.Format("2006-01-02 15:04:05"),
		Symbol:         symbol,
		Vote:           string(res.Vote),
		Label:          string(assess.Label),
		TargetPrice:    res.TargetPrice,
		TargetTime:     res.TargetTime,
		CurrentPrice:   res.CurrentPrice,
		ProjectedPrice: res.ProjectedPrice,
		HoursRemaining: res.HoursRemaining,
		Sentiment:      res.Sentiment,
		TrustSignals:   assess.TrustSignals,
		CautionFlags:   assess.CautionFlags,
	}
	p := dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, _ := json.Marshal(e)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips daily files older than retentionDays.
func CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	root := logDir()
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(p) != ".txt" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil {
			return nil
		}
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		if info.ModTime().Before(cutoff) {
			gz := p + ".gz"
			// if already gz exists, remove original .txt
			if _, e2 := os.Stat(gz); e2 == nil {
				_ = os.Remove(p)
				return nil
			}

			in, e3 := os.Open(p)
			if e3 != nil {
				return nil
			}
			defer in.Close()

			out, e4 := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
			if e4 != nil {
				return nil
			}
			gw := gzip.NewWriter(out)
			if _, e5 := io.Copy(gw, in); e5 == nil {
				_ = gw.Close()
				_ = out.Close()
				_ = os.Remove(p)
			} else {
				_ = gw.Close()
				_ = out.Close()
			}
		}
		return nil
	})
}
