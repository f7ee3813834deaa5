package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang-news-trader/internal/trader/config"
	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/common"
	"golang-news-trader/pkg/logger"
)

type newsAPIRepository struct {
	cfg     *config.Config
	log     *logger.Logger
	fetcher *rawFetcher
}

// NewNewsAPIRepository creates a top-headlines client for NewsAPI.
func NewNewsAPIRepository(cfg *config.Config, log *logger.Logger) HeadlineRepository {
	return &newsAPIRepository{
		cfg: cfg,
		log: log,
		fetcher: newRawFetcher("newsapi", cfg.News.Timeout,
			RetryPolicy{MaxAttempts: cfg.News.MaxAttempts}, cfg.News.UserAgent, log),
	}
}

// FetchHeadlines returns the raw top-headlines body. The API key is checked
// before anything touches the network.
func (r *newsAPIRepository) FetchHeadlines(ctx context.Context) (string, error) {
	if r.cfg.NewsAPI.APIKey == "" {
		return "", fmt.Errorf("%w: %s is not set", dto.ErrConfiguration, common.EnvNewsAPIKey)
	}

	endpoint, err := r.endpoint(r.cfg.NewsAPI.APIKey)
	if err != nil {
		return "", fmt.Errorf("%w: invalid news_api.base_url: %v", dto.ErrConfiguration, err)
	}
	redacted, _ := r.endpoint("REDACTED")

	r.log.InfoContext(ctx, "Fetching top headlines",
		logger.StringField("category", r.cfg.NewsAPI.Category),
		logger.IntField("page_size", r.cfg.NewsAPI.PageSize))

	return r.fetcher.fetch(ctx, endpoint, redacted)
}

func (r *newsAPIRepository) endpoint(apiKey string) (string, error) {
	u, err := url.Parse(r.cfg.NewsAPI.BaseURL + common.NewsAPITopHeadlines)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("category", r.cfg.NewsAPI.Category)
	q.Set("pageSize", strconv.Itoa(r.cfg.NewsAPI.PageSize))
	q.Set("apiKey", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
