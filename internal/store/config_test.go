package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Symbol != "BTCUSDT" {
		t.Errorf("Expected symbol BTCUSDT, got %s", cfg.Symbol)
	}
	if cfg.Interval != "1h" {
		t.Errorf("Expected interval 1h, got %s", cfg.Interval)
	}
	if cfg.Projection.Lookback != 10 {
		t.Errorf("Expected lookback 10, got %d", cfg.Projection.Lookback)
	}
	if cfg.Projection.MinHours != 0.25 {
		t.Errorf("Expected min_hours 0.25, got %v", cfg.Projection.MinHours)
	}
	if cfg.Vote.MinSentiment != -0.1 {
		t.Errorf("Expected min_sentiment -0.1, got %v", cfg.Vote.MinSentiment)
	}
	if cfg.Advisor.GoMinTrust != 3 || cfg.Advisor.SkipMinCaution != 2 {
		t.Errorf("Unexpected advisor thresholds: %+v", cfg.Advisor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "symbol: ETHUSDT\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Symbol != "ETHUSDT" {
		t.Errorf("Expected symbol ETHUSDT, got %s", cfg.Symbol)
	}
	if cfg.Indicators.RSIPeriod != 14 {
		t.Errorf("Expected default rsi_period 14, got %d", cfg.Indicators.RSIPeriod)
	}
	if cfg.Sentiment.Query == "" {
		t.Error("Expected a default sentiment query")
	}
}

func TestLoadConfigNormalizesInterval(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "interval: 1H\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Interval != "1h" {
		t.Errorf("Expected lowercased interval, got %s", cfg.Interval)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown interval", func(c *Config) { c.Interval = "2h" }},
		{"empty symbol", func(c *Config) { c.Symbol = "" }},
		{"lookback too small", func(c *Config) { c.Projection.Lookback = 1 }},
		{"ema fast above slow", func(c *Config) { c.Indicators.EMAFast = 60 }},
		{"candle limit below slow ema", func(c *Config) { c.CandleLimit = 40 }},
		{"inverted rsi band", func(c *Config) { c.Advisor.RSILow = 80 }},
		{"alerts without target", func(c *Config) { c.Alerts.Enabled = true }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", tt.name)
		}
	}
}

func TestEngineParams(t *testing.T) {
	cfg := Default()
	p := cfg.EngineParams()

	if p.Symbol != cfg.Symbol {
		t.Errorf("Expected symbol %s, got %s", cfg.Symbol, p.Symbol)
	}
	if p.Lookback != cfg.Projection.Lookback {
		t.Errorf("Expected lookback %d, got %d", cfg.Projection.Lookback, p.Lookback)
	}
	if p.Advisor != cfg.Advisor {
		t.Errorf("Expected advisor config to carry over")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
