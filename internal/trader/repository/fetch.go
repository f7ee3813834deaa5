package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/logger"

	"go.uber.org/zap"
)

// RetryPolicy is the fixed attempt budget for a fetch. Attempts are made back
// to back with no delay between them.
type RetryPolicy struct {
	MaxAttempts int
}

// rawFetcher performs GET requests against a single URL under a retry policy
// and returns the full body as text.
type rawFetcher struct {
	client    *http.Client
	policy    RetryPolicy
	userAgent string
	log       *logger.Logger
	source    string
}

func newRawFetcher(source string, timeout time.Duration, policy RetryPolicy, userAgent string, log *logger.Logger) *rawFetcher {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &rawFetcher{
		client:    &http.Client{Timeout: timeout},
		policy:    policy,
		userAgent: userAgent,
		log:       log,
		source:    source,
	}
}

// fetch GETs target under the retry policy. Logs and errors only ever carry redactedURL.
func (f *rawFetcher) fetch(ctx context.Context, target string, redactedURL string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= f.policy.MaxAttempts; attempt++ {
		body, retryable, err := f.attempt(ctx, target, redactedURL)
		if err == nil {
			f.log.DebugContext(ctx, "Fetched headlines",
				zap.String("source", f.source),
				zap.Int("attempt", attempt),
				zap.Int("bytes", len(body)))
			return body, nil
		}
		lastErr = err

		f.log.WarnContext(ctx, "Headline fetch attempt failed",
			zap.String("source", f.source),
			zap.String("url", redactedURL),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", f.policy.MaxAttempts),
			zap.Error(err))

		if !retryable || ctx.Err() != nil {
			break
		}
	}

	f.log.ErrorContext(ctx, "Failed to fetch news after retries", zap.String("source", f.source), zap.Error(lastErr))
	return "", fmt.Errorf("%w: %s: %v", dto.ErrFetch, f.source, lastErr)
}

// attempt performs one GET. A 4xx other than 408 and 429 is not retryable.
func (f *rawFetcher) attempt(ctx context.Context, target, redactedURL string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", redact(err, redactedURL))
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("failed to send request: %w", redact(err, redactedURL))
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return "", true, fmt.Errorf("failed to read response body: %w", redact(err, redactedURL))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", retryableStatus(resp.StatusCode), fmt.Errorf("received non-OK response: %d", resp.StatusCode)
	}

	return buf.String(), false, nil
}

func retryableStatus(code int) bool {
	if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
		return true
	}
	return code < 400 || code > 499
}

// redact swaps the request URL carried by net/http errors for its redacted form.
func redact(err error, redactedURL string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactedURL
	}
	return err
}
