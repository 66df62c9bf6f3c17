package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"btc-probo-bot/internal/types"
)

const klinesPayload = `[
  [1700000000000, "64000.00", "64500.00", "63800.00", "64200.00", "1234.5", 1700003599999, "0", 100, "0", "0", "0"],
  [1700003600000, "64200.00", "64800.00", "64100.00", "64600.00", "987.6", 1700007199999, "0", 100, "0", "0", "0"]
]`

func newStubServer(t *testing.T, klines, ticker string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/klines", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(klines))
	})
	mux.HandleFunc("/api/v3/ticker/price", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(ticker))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRecentCandles(t *testing.T) {
	srv := newStubServer(t, klinesPayload, `{}`)
	b := NewBinanceWithBaseURL(srv.URL, "1h", 5*time.Second)

	candles, err := b.RecentCandles(context.Background(), "BTCUSDT", 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(candles) != 2 {
		t.Fatalf("Expected 2 candles, got %d", len(candles))
	}

	first := candles[0]
	if first.Ts != 1700000000 {
		t.Errorf("Expected open time in seconds 1700000000, got %d", first.Ts)
	}
	if first.Open != 64000 || first.High != 64500 || first.Low != 63800 || first.Close != 64200 {
		t.Errorf("Unexpected OHLC: %+v", first)
	}
	if first.Vol != 1234.5 {
		t.Errorf("Expected volume 1234.5, got %v", first.Vol)
	}
	if candles[1].Close != 64600 {
		t.Errorf("Expected second close 64600, got %v", candles[1].Close)
	}
}

func TestRecentCandlesMalformedPayload(t *testing.T) {
	srv := newStubServer(t, `{"code":-1121,"msg":"Invalid symbol."}`, `{}`)
	b := NewBinanceWithBaseURL(srv.URL, "1h", 5*time.Second)

	_, err := b.RecentCandles(context.Background(), "NOPE", 2)
	if !errors.Is(err, types.ErrDataUnavailable) {
		t.Errorf("Expected ErrDataUnavailable, got %v", err)
	}
}

func TestRecentCandlesShortRow(t *testing.T) {
	srv := newStubServer(t, `[[1700000000000, "64000.00"]]`, `{}`)
	b := NewBinanceWithBaseURL(srv.URL, "1h", 5*time.Second)

	_, err := b.RecentCandles(context.Background(), "BTCUSDT", 1)
	if !errors.Is(err, types.ErrDataUnavailable) {
		t.Errorf("Expected ErrDataUnavailable for a short kline row, got %v", err)
	}
}

func TestCurrentPrice(t *testing.T) {
	srv := newStubServer(t, `[]`, `{"symbol":"BTCUSDT","price":"64123.45"}`)
	b := NewBinanceWithBaseURL(srv.URL, "1h", 5*time.Second)

	price, err := b.CurrentPrice(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if price != 64123.45 {
		t.Errorf("Expected 64123.45, got %v", price)
	}
}

func TestCurrentPriceBadPrice(t *testing.T) {
	srv := newStubServer(t, `[]`, `{"symbol":"BTCUSDT","price":"not-a-number"}`)
	b := NewBinanceWithBaseURL(srv.URL, "1h", 5*time.Second)

	_, err := b.CurrentPrice(context.Background(), "BTCUSDT")
	if !errors.Is(err, types.ErrDataUnavailable) {
		t.Errorf("Expected ErrDataUnavailable, got %v", err)
	}
}
