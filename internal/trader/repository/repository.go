package repository

import (
	"context"

	"golang-news-trader/internal/trader/dto"
)

// HeadlineRepository retrieves the raw headline document from a news source.
type HeadlineRepository interface {
	FetchHeadlines(ctx context.Context) (string, error)
}

// SentimentRepository scores a single headline. Failures never surface as errors;
// they are reported through a degraded neutral result.
type SentimentRepository interface {
	Score(ctx context.Context, headline, link string) dto.SentimentResult
}
