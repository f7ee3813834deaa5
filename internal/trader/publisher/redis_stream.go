package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// StreamAdder is the part of the redis client the publisher needs.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamPublisher appends every scored article to a Redis stream so other
// services can consume the recommendations.
type RedisStreamPublisher struct {
	client StreamAdder
	stream string
	maxLen int64
	log    *logger.Logger
}

func NewRedisStreamPublisher(client StreamAdder, stream string, maxLen int64, log *logger.Logger) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
		log:    log,
	}
}

func (p *RedisStreamPublisher) Name() string { return "redis_stream" }

func (p *RedisStreamPublisher) Report(ctx context.Context, scored dto.ScoredArticle) error {
	payload, err := json.Marshal(scored)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation payload: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{"payload": payload},
		MaxLen: p.maxLen,
		Approx: true,
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish recommendation: %w", err)
	}

	p.log.DebugContext(ctx, "Recommendation published",
		logger.StringField("stream", p.stream),
		logger.StringField("message_id", id))
	return nil
}

func (p *RedisStreamPublisher) Flush(ctx context.Context) error { return nil }
