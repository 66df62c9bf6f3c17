package news

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSource struct {
	headlines []string
	err       error
	calls     int
}

func (f *fakeSource) Headlines(_ context.Context, _ string, _ int) ([]string, error) {
	f.calls++
	return f.headlines, f.err
}

func newTestService(src headlineSource, ttl time.Duration) *Service {
	return &Service{
		scraper:      src,
		analyzer:     NewAnalyzer(),
		maxHeadlines: 20,
		ttl:          ttl,
		cache:        make(map[string]cachedScore),
		now:          time.Now,
	}
}

func TestSentimentScoresHeadlines(t *testing.T) {
	src := &fakeSource{headlines: []string{"Bitcoin surges", "BTC rally continues"}}
	svc := newTestService(src, time.Minute)

	score, err := svc.Sentiment(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score != 1 {
		t.Errorf("Expected score 1 for all-positive headlines, got %v", score)
	}
}

func TestSentimentCacheHit(t *testing.T) {
	src := &fakeSource{headlines: []string{"Bitcoin surges"}}
	svc := newTestService(src, time.Minute)

	base := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	now := base
	svc.now = func() time.Time { return now }

	if _, err := svc.Sentiment(context.Background(), "bitcoin"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	now = base.Add(30 * time.Second)
	if _, err := svc.Sentiment(context.Background(), "bitcoin"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if src.calls != 1 {
		t.Errorf("Expected 1 scrape within the TTL, got %d", src.calls)
	}
}

func TestSentimentCacheExpiry(t *testing.T) {
	src := &fakeSource{headlines: []string{"Bitcoin surges"}}
	svc := newTestService(src, time.Minute)

	base := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	now := base
	svc.now = func() time.Time { return now }

	_, _ = svc.Sentiment(context.Background(), "bitcoin")
	now = base.Add(2 * time.Minute)
	_, _ = svc.Sentiment(context.Background(), "bitcoin")

	if src.calls != 2 {
		t.Errorf("Expected a fresh scrape after the TTL, got %d calls", src.calls)
	}
}

func TestSentimentNeutralOnScrapeFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("blocked")}
	svc := newTestService(src, time.Minute)

	score, err := svc.Sentiment(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("Expected scrape failure to degrade to neutral, got error %v", err)
	}
	if score != 0 {
		t.Errorf("Expected neutral 0, got %v", score)
	}
}

func TestSentimentFailureNotCached(t *testing.T) {
	src := &fakeSource{err: errors.New("blocked")}
	svc := newTestService(src, time.Minute)

	_, _ = svc.Sentiment(context.Background(), "bitcoin")
	_, _ = svc.Sentiment(context.Background(), "bitcoin")

	if src.calls != 2 {
		t.Errorf("Expected failures to bypass the cache, got %d calls", src.calls)
	}
}
