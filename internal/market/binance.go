package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"btc-probo-bot/internal/api"
	"btc-probo-bot/internal/logger"
	"btc-probo-bot/internal/types"
)

const defaultBaseURL = "https://api.binance.com"

// Binance fetches spot klines and ticker prices from the public
// Binance REST API. No API key is needed for either endpoint.
type Binance struct {
	client   *api.Client
	interval string
}

func NewBinance(interval string, timeout time.Duration) *Binance {
	return &Binance{
		client: api.NewClient(
			api.WithBaseURL(defaultBaseURL),
			api.WithTimeout(timeout),
			api.WithLogging(true),
		),
		interval: interval,
	}
}

// NewBinanceWithBaseURL is used by tests to point at a stub server.
func NewBinanceWithBaseURL(baseURL, interval string, timeout time.Duration) *Binance {
	b := NewBinance(interval, timeout)
	b.client = api.NewClient(api.WithBaseURL(baseURL), api.WithTimeout(timeout))
	return b
}

// RecentCandles returns up to limit candles ordered by open time
// ascending, matching the order Binance serves them in.
func (b *Binance) RecentCandles(ctx context.Context, symbol string, limit int) ([]types.Candle, error) {
	path := fmt.Sprintf("/api/v3/klines?symbol=%s&interval=%s&limit=%d",
		url.QueryEscape(symbol), url.QueryEscape(b.interval), limit)

	resp, err := b.client.GETWithRetry(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("klines fetch for %s: %v: %w", symbol, err, types.ErrDataUnavailable)
	}

	// Each kline is a 12-element array; fields 0-5 are open time and
	// OHLCV, prices encoded as strings.
	var raw [][]json.RawMessage
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return nil, fmt.Errorf("klines parse for %s: %v: %w", symbol, err, types.ErrDataUnavailable)
	}

	candles := make([]types.Candle, 0, len(raw))
	for _, k := range raw {
		if len(k) < 6 {
			return nil, fmt.Errorf("short kline row (%d fields): %w", len(k), types.ErrDataUnavailable)
		}
		var ts int64
		if err := json.Unmarshal(k[0], &ts); err != nil {
			return nil, fmt.Errorf("kline open time: %v: %w", err, types.ErrDataUnavailable)
		}
		vals := make([]float64, 5)
		for i := 1; i <= 5; i++ {
			var s string
			if err := json.Unmarshal(k[i], &s); err != nil {
				return nil, fmt.Errorf("kline field %d: %v: %w", i, err, types.ErrDataUnavailable)
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("kline field %d %q: %v: %w", i, s, err, types.ErrDataUnavailable)
			}
			vals[i-1] = f
		}
		candles = append(candles, types.Candle{
			Ts:    ts / 1000,
			Open:  vals[0],
			High:  vals[1],
			Low:   vals[2],
			Close: vals[3],
			Vol:   vals[4],
		})
	}

	logger.Debug(ctx, "Candles fetched", "symbol", symbol, "interval", b.interval, "count", len(candles))
	return candles, nil
}

// CurrentPrice returns the latest spot price for the symbol.
func (b *Binance) CurrentPrice(ctx context.Context, symbol string) (float64, error) {
	path := "/api/v3/ticker/price?symbol=" + url.QueryEscape(symbol)

	resp, err := b.client.GETWithRetry(ctx, path, nil)
	if err != nil {
		return 0, fmt.Errorf("ticker fetch for %s: %v: %w", symbol, err, types.ErrDataUnavailable)
	}

	var ticker struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := json.Unmarshal(resp.Body, &ticker); err != nil {
		return 0, fmt.Errorf("ticker parse for %s: %v: %w", symbol, err, types.ErrDataUnavailable)
	}
	price, err := strconv.ParseFloat(ticker.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("ticker price %q: %v: %w", ticker.Price, err, types.ErrDataUnavailable)
	}
	return price, nil
}
