package repository

import (
	"context"

	"golang-news-trader/internal/trader/config"
	"golang-news-trader/pkg/logger"
)

type rssRepository struct {
	cfg     *config.Config
	log     *logger.Logger
	fetcher *rawFetcher
}

// NewRSSRepository creates a client for a single RSS or Atom feed URL.
func NewRSSRepository(cfg *config.Config, log *logger.Logger) HeadlineRepository {
	return &rssRepository{
		cfg: cfg,
		log: log,
		fetcher: newRawFetcher("rss", cfg.News.Timeout,
			RetryPolicy{MaxAttempts: cfg.News.MaxAttempts}, cfg.News.UserAgent, log),
	}
}

func (r *rssRepository) FetchHeadlines(ctx context.Context) (string, error) {
	r.log.InfoContext(ctx, "Fetching feed", logger.StringField("url", r.cfg.RSS.URL))
	return r.fetcher.fetch(ctx, r.cfg.RSS.URL, r.cfg.RSS.URL)
}
