package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"btc-probo-bot/internal/engine"
)

type Config struct {
	Symbol      string `yaml:"symbol"`
	Interval    string `yaml:"interval"`
	CandleLimit int    `yaml:"candle_limit"`

	Projection struct {
		Lookback int     `yaml:"lookback"`
		MinHours float64 `yaml:"min_hours"`
	} `yaml:"projection"`

	Indicators struct {
		RSIPeriod int `yaml:"rsi_period"`
		EMAFast   int `yaml:"ema_fast"`
		EMASlow   int `yaml:"ema_slow"`
	} `yaml:"indicators"`

	Vote struct {
		MinSentiment float64 `yaml:"min_sentiment"`
	} `yaml:"vote"`

	Advisor engine.AdvisorConfig `yaml:"advisor"`

	Sentiment struct {
		Query          string `yaml:"query"`
		MaxHeadlines   int    `yaml:"max_headlines"`
		CacheMinutes   int    `yaml:"cache_minutes"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"sentiment"`

	Alerts struct {
		Enabled      bool    `yaml:"enabled"`
		PollMinutes  int     `yaml:"poll_minutes"`
		BlockMinutes int     `yaml:"block_minutes"`
		TargetPrice  float64 `yaml:"target_price"`
		HealthAddr   string  `yaml:"health_addr"`
	} `yaml:"alerts"`
}

var knownIntervals = map[string]bool{
	"1m": true, "5m": true, "15m": true, "30m": true,
	"1h": true, "4h": true, "1d": true,
}

func (c *Config) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if !knownIntervals[c.Interval] {
		return fmt.Errorf("invalid interval '%s'", c.Interval)
	}
	if c.Projection.Lookback < 2 {
		return fmt.Errorf("projection.lookback must be >= 2, got %d", c.Projection.Lookback)
	}
	if c.Projection.MinHours <= 0 {
		return fmt.Errorf("projection.min_hours must be > 0, got %.2f", c.Projection.MinHours)
	}
	if c.Indicators.RSIPeriod <= 1 {
		return fmt.Errorf("indicators.rsi_period must be > 1, got %d", c.Indicators.RSIPeriod)
	}
	if c.Indicators.EMAFast >= c.Indicators.EMASlow {
		return fmt.Errorf("indicators.ema_fast (%d) must be below ema_slow (%d)", c.Indicators.EMAFast, c.Indicators.EMASlow)
	}
	if c.CandleLimit < c.Indicators.EMASlow {
		return fmt.Errorf("candle_limit (%d) below ema_slow window (%d)", c.CandleLimit, c.Indicators.EMASlow)
	}
	if c.Advisor.RSILow >= c.Advisor.RSIHigh {
		return fmt.Errorf("advisor.rsi_low (%.0f) must be below rsi_high (%.0f)", c.Advisor.RSILow, c.Advisor.RSIHigh)
	}
	if c.Alerts.Enabled && c.Alerts.TargetPrice <= 0 {
		return fmt.Errorf("alerts.target_price must be > 0 when alerts are enabled")
	}
	return nil
}

// EngineParams maps the config onto the engine's own parameter struct.
func (c *Config) EngineParams() engine.Params {
	return engine.Params{
		Symbol:         c.Symbol,
		CandleLimit:    c.CandleLimit,
		Lookback:       c.Projection.Lookback,
		MinHours:       c.Projection.MinHours,
		RSIPeriod:      c.Indicators.RSIPeriod,
		EMAFast:        c.Indicators.EMAFast,
		EMASlow:        c.Indicators.EMASlow,
		MinSentiment:   c.Vote.MinSentiment,
		SentimentQuery: c.Sentiment.Query,
		Advisor:        c.Advisor,
	}
}

func (c *Config) SentimentTTL() time.Duration {
	return time.Duration(c.Sentiment.CacheMinutes) * time.Minute
}

func (c *Config) SentimentTimeout() time.Duration {
	return time.Duration(c.Sentiment.TimeoutSeconds) * time.Second
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	applyDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

// Default returns the configuration the original tool shipped with.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}

func applyDefaults(c *Config) {
	if c.Symbol == "" {
		c.Symbol = "BTCUSDT"
	}
	if c.Interval == "" {
		c.Interval = "1h"
	}
	c.Interval = strings.ToLower(c.Interval)
	if c.CandleLimit == 0 {
		c.CandleLimit = 100
	}
	if c.Projection.Lookback == 0 {
		c.Projection.Lookback = 10
	}
	if c.Projection.MinHours == 0 {
		c.Projection.MinHours = 0.25
	}
	if c.Indicators.RSIPeriod == 0 {
		c.Indicators.RSIPeriod = 14
	}
	if c.Indicators.EMAFast == 0 {
		c.Indicators.EMAFast = 20
	}
	if c.Indicators.EMASlow == 0 {
		c.Indicators.EMASlow = 50
	}
	if c.Vote.MinSentiment == 0 {
		c.Vote.MinSentiment = -0.1
	}
	def := engine.DefaultAdvisorConfig()
	if c.Advisor.TrustMaxHours == 0 {
		c.Advisor.TrustMaxHours = def.TrustMaxHours
	}
	if c.Advisor.CautionMinHours == 0 {
		c.Advisor.CautionMinHours = def.CautionMinHours
	}
	if c.Advisor.StrongSentiment == 0 {
		c.Advisor.StrongSentiment = def.StrongSentiment
	}
	if c.Advisor.ConflictSentiment == 0 {
		c.Advisor.ConflictSentiment = def.ConflictSentiment
	}
	if c.Advisor.RSILow == 0 {
		c.Advisor.RSILow = def.RSILow
	}
	if c.Advisor.RSIHigh == 0 {
		c.Advisor.RSIHigh = def.RSIHigh
	}
	if c.Advisor.GoMinTrust == 0 {
		c.Advisor.GoMinTrust = def.GoMinTrust
	}
	if c.Advisor.SkipMinCaution == 0 {
		c.Advisor.SkipMinCaution = def.SkipMinCaution
	}
	if c.Sentiment.Query == "" {
		c.Sentiment.Query = "bitcoin OR btc"
	}
	if c.Sentiment.MaxHeadlines == 0 {
		c.Sentiment.MaxHeadlines = 20
	}
	if c.Sentiment.CacheMinutes == 0 {
		c.Sentiment.CacheMinutes = 10
	}
	if c.Sentiment.TimeoutSeconds == 0 {
		c.Sentiment.TimeoutSeconds = 20
	}
	if c.Alerts.PollMinutes == 0 {
		c.Alerts.PollMinutes = 10
	}
	if c.Alerts.BlockMinutes == 0 {
		c.Alerts.BlockMinutes = 10
	}
	if c.Alerts.HealthAddr == "" {
		c.Alerts.HealthAddr = ":8080"
	}
}
