package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-news-trader/internal/trader/config"
	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type sentimentRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewSentimentRepository creates a client for the local sentiment service.
func NewSentimentRepository(cfg *config.Config, log *logger.Logger) SentimentRepository {
	requestLimiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.Sentiment.MaxRequestPerMinute > 0 {
		secondsPerRequest := time.Minute / time.Duration(cfg.Sentiment.MaxRequestPerMinute)
		requestLimiter = rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	}
	return &sentimentRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Sentiment.Timeout,
		},
		requestLimiter: requestLimiter,
	}
}

// Score posts the headline, and the link when there is one, to the service.
// Any failure yields dto.NeutralSentiment.
func (r *sentimentRepository) Score(ctx context.Context, headline, link string) dto.SentimentResult {
	body, err := r.sendRequest(ctx, dto.SentimentRequest{Text: headline, URL: link})
	if err != nil {
		r.log.WarnContext(ctx, "Failed to call sentiment service, using neutral score",
			zap.String("title", headline),
			zap.Error(err))
		return dto.NeutralSentiment()
	}

	result, err := parseSentiment(body)
	if err != nil {
		r.log.WarnContext(ctx, "Failed to parse sentiment response, using neutral score",
			zap.String("title", headline),
			zap.String("body", string(body)),
			zap.Error(err))
		return dto.NeutralSentiment()
	}

	r.log.DebugContext(ctx, "Scored headline",
		zap.String("title", headline),
		zap.Float64("sentiment", result.Score))
	return result
}

func (r *sentimentRepository) sendRequest(ctx context.Context, payload dto.SentimentRequest) ([]byte, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Sentiment.URL, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to sentiment service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("received non-OK response from sentiment service: %d", resp.StatusCode)
	}
	return body, nil
}

func parseSentiment(body []byte) (dto.SentimentResult, error) {
	var resp dto.SentimentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return dto.SentimentResult{}, err
	}
	if resp.Sentiment == nil {
		return dto.SentimentResult{}, fmt.Errorf("response has no sentiment field")
	}

	result := dto.SentimentResult{Score: *resp.Sentiment}
	tokens := bytes.TrimSpace(resp.Tokens)
	if len(tokens) > 0 && tokens[0] == '[' {
		result.Tokens = string(tokens)
	}
	return result, nil
}
