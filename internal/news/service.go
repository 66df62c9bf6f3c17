package news

import (
	"context"
	"math"
	"sync"
	"time"

	"btc-probo-bot/internal/logger"
)

type headlineSource interface {
	Headlines(ctx context.Context, query string, maxItems int) ([]string, error)
}

// Service ties the scraper and analyzer together behind a cached
// sentiment lookup. Google News is slow and rate limited, so results
// are held for a short TTL; the advisory loop re-polls well within it.
type Service struct {
	scraper  headlineSource
	analyzer *Analyzer

	maxHeadlines int
	ttl          time.Duration

	mu    sync.Mutex
	cache map[string]cachedScore

	now func() time.Time
}

type cachedScore struct {
	score     float64
	headlines int
	fetchedAt time.Time
}

func NewService(scraper *Scraper, maxHeadlines int, ttl time.Duration) *Service {
	return &Service{
		scraper:      scraper,
		analyzer:     NewAnalyzer(),
		maxHeadlines: maxHeadlines,
		ttl:          ttl,
		cache:        make(map[string]cachedScore),
		now:          time.Now,
	}
}

// Sentiment returns the mean headline polarity for the query in
// [-1, 1]. A failed scrape degrades to neutral rather than failing the
// caller: the vote must still be computable without news.
func (s *Service) Sentiment(ctx context.Context, query string) (float64, error) {
	s.mu.Lock()
	if entry, ok := s.cache[query]; ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		s.mu.Unlock()
		logger.Debug(ctx, "Sentiment served from cache", "query", query, "score", entry.score)
		return entry.score, nil
	}
	s.mu.Unlock()

	headlines, err := s.scraper.Headlines(ctx, query, s.maxHeadlines)
	if err != nil {
		logger.Warn(ctx, "Headline scrape failed, treating sentiment as neutral", "query", query, "error", err)
		return 0, nil
	}

	score := round3(s.analyzer.Score(headlines))

	s.mu.Lock()
	s.cache[query] = cachedScore{score: score, headlines: len(headlines), fetchedAt: s.now()}
	s.mu.Unlock()

	logger.Info(ctx, "Sentiment computed", "query", query, "headlines", len(headlines), "score", score)
	return score, nil
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
