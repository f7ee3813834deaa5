package service

import (
	"context"
	"time"

	"golang-news-trader/internal/entity"
	"golang-news-trader/internal/trader/config"
	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/internal/trader/extractor"
	"golang-news-trader/internal/trader/repository"
	"golang-news-trader/pkg/logger"
	"golang-news-trader/pkg/utils"
)

// Reporter consumes every scored article of a run. Flush is called once after
// the last article. Reporter errors are logged and never stop the run.
type Reporter interface {
	Name() string
	Report(ctx context.Context, scored dto.ScoredArticle) error
	Flush(ctx context.Context) error
}

// RecommendationService runs the fetch, extract, score and report pipeline.
type RecommendationService interface {
	Run(ctx context.Context) (*dto.RunSummary, error)
}

type recommendationService struct {
	cfg           *config.Config
	log           *logger.Logger
	headlineRepo  repository.HeadlineRepository
	extractor     extractor.Extractor
	sentimentRepo repository.SentimentRepository
	location      *time.Location
	reporters     []Reporter
}

// NewRecommendationService wires the pipeline. A nil location means the process local zone.
func NewRecommendationService(
	cfg *config.Config,
	log *logger.Logger,
	headlineRepo repository.HeadlineRepository,
	ex extractor.Extractor,
	sentimentRepo repository.SentimentRepository,
	location *time.Location,
	reporters []Reporter,
) RecommendationService {
	return &recommendationService{
		cfg:           cfg,
		log:           log,
		headlineRepo:  headlineRepo,
		extractor:     ex,
		sentimentRepo: sentimentRepo,
		location:      location,
		reporters:     reporters,
	}
}

// Run fetches once, extracts every article and then handles them strictly one
// at a time. Only fetch and extraction failures are returned.
func (s *recommendationService) Run(ctx context.Context) (*dto.RunSummary, error) {
	raw, err := s.headlineRepo.FetchHeadlines(ctx)
	if err != nil {
		return nil, err
	}

	articles, err := s.extractor.Extract(raw)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to extract articles", logger.ErrorField(err))
		return nil, err
	}

	summary := &dto.RunSummary{Extracted: len(articles)}
	s.log.InfoContext(ctx, "Extracted articles", logger.IntField("count", len(articles)))

	for i, article := range articles {
		scored := s.process(ctx, article)
		summary.Add(scored)

		s.log.InfoContext(ctx, "Article scored",
			logger.IntField("index", i),
			logger.StringField("title", article.Title),
			logger.StringField("recommendation", scored.Recommendation.String()),
			logger.FloatField("sentiment", scored.Sentiment.Score),
			logger.BoolField("degraded", scored.Sentiment.Degraded))

		for _, reporter := range s.reporters {
			if err := reporter.Report(ctx, scored); err != nil {
				s.log.ErrorContext(ctx, "Failed to report article",
					logger.StringField("reporter", reporter.Name()),
					logger.StringField("title", article.Title),
					logger.ErrorField(err))
			}
		}
	}

	for _, reporter := range s.reporters {
		if err := reporter.Flush(ctx); err != nil {
			s.log.ErrorContext(ctx, "Failed to flush reporter",
				logger.StringField("reporter", reporter.Name()),
				logger.ErrorField(err))
		}
	}

	s.log.InfoContext(ctx, "Run completed",
		logger.IntField("extracted", summary.Extracted),
		logger.IntField("buy", summary.Buy),
		logger.IntField("sell", summary.Sell),
		logger.IntField("hold", summary.Hold),
		logger.IntField("degraded", summary.Degraded))

	return summary, nil
}

func (s *recommendationService) process(ctx context.Context, article entity.Article) dto.ScoredArticle {
	sentiment := s.sentimentRepo.Score(ctx, article.Title, article.URL)
	if sentiment.Degraded {
		s.log.WarnContext(ctx, "Sentiment degraded to neutral", logger.StringField("title", article.Title))
	}

	return dto.ScoredArticle{
		Article:   article,
		Sentiment: sentiment,
		Recommendation: DecideWithThresholds(sentiment.Score,
			s.cfg.Recommendation.BuyThreshold, s.cfg.Recommendation.SellThreshold),
		LocalTime: utils.FormatLocalTime(article.PublishedAt, s.location),
	}
}
