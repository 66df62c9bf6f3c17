package news

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"btc-probo-bot/internal/api"
	"btc-probo-bot/internal/logger"
)

// Scraper collects recent news headlines for a search query from
// Google News. The article pages themselves are never fetched; the
// naive sentiment score only needs titles.
type Scraper struct {
	timeout time.Duration
	client  *api.Client
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		timeout: timeout,
		client:  api.NewClient(api.WithTimeout(timeout)),
	}
}

// Headlines returns up to maxItems headlines for the query, trying the
// Google News search page first and the RSS feed as fallback.
func (s *Scraper) Headlines(ctx context.Context, query string, maxItems int) ([]string, error) {
	headlines, err := s.scrapeSearchPage(ctx, query, maxItems)
	if err != nil {
		logger.Warn(ctx, "Google News page scrape failed, falling back to RSS", "query", query, "error", err)
	}
	if len(headlines) > 0 {
		return headlines, nil
	}

	headlines, err = s.scrapeRSS(ctx, query, maxItems)
	if err != nil {
		return nil, err
	}
	return headlines, nil
}

// scrapeSearchPage pulls article titles off the Google News search page.
func (s *Scraper) scrapeSearchPage(ctx context.Context, query string, maxItems int) ([]string, error) {
	headlines := []string{}

	c := colly.NewCollector(
		colly.AllowedDomains("news.google.com", "www.google.com"),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	c.OnHTML("article", func(e *colly.HTMLElement) {
		if len(headlines) >= maxItems {
			return
		}
		title := strings.TrimSpace(e.ChildText("h3, h4"))
		if title != "" {
			headlines = append(headlines, title)
		}
	})

	searchURL := fmt.Sprintf("https://news.google.com/search?q=%s&hl=en-US&gl=US&ceid=US:en",
		url.QueryEscape(query))
	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("failed to scrape Google News: %w", err)
	}
	c.Wait()

	logger.Debug(ctx, "Google News page scraped", "query", query, "headlines", len(headlines))
	return headlines, nil
}

// scrapeRSS reads item titles from the Google News RSS search feed.
// The feed is lenient XML; goquery's HTML parser handles it fine for
// title extraction.
func (s *Scraper) scrapeRSS(ctx context.Context, query string, maxItems int) ([]string, error) {
	feedURL := "https://news.google.com/rss/search?q=" + url.QueryEscape(query)

	resp, err := s.client.GET(ctx, feedURL, api.BrowserHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch RSS feed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	headlines := []string{}
	doc.Find("item title").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		if title != "" {
			headlines = append(headlines, title)
		}
		return len(headlines) < maxItems
	})

	logger.Debug(ctx, "Google News RSS parsed", "query", query, "headlines", len(headlines))
	return headlines, nil
}
