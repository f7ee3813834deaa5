package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-news-trader/internal/entity"
	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/logger"
)

type fakeStream struct {
	args []*redis.XAddArgs
	err  error
}

func (f *fakeStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = append(f.args, a)
	return redis.NewStringResult("1-0", f.err)
}

func TestRedisStreamPublisher_Report(t *testing.T) {
	stream := &fakeStream{}
	p := NewRedisStreamPublisher(stream, "news.recommendation", 500, logger.NewNop())

	scored := dto.ScoredArticle{
		Article:        entity.Article{PublishedAt: "2023-05-12T15:30:45Z", Title: "Chips rally", URL: "http://x"},
		Sentiment:      dto.NeutralSentiment(),
		Recommendation: entity.RecommendationHold,
		LocalTime:      "2023-05-12 15:30:45 UTC",
	}
	require.NoError(t, p.Report(context.Background(), scored))
	require.NoError(t, p.Flush(context.Background()))

	require.Len(t, stream.args, 1)
	args := stream.args[0]
	assert.Equal(t, "news.recommendation", args.Stream)
	assert.EqualValues(t, 500, args.MaxLen)

	values, ok := args.Values.(map[string]interface{})
	require.True(t, ok)
	payload, ok := values["payload"].([]byte)
	require.True(t, ok)

	var decoded dto.ScoredArticle
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, scored, decoded)
	assert.True(t, decoded.Sentiment.Degraded)
}

func TestRedisStreamPublisher_Error(t *testing.T) {
	stream := &fakeStream{err: errors.New("connection reset")}
	p := NewRedisStreamPublisher(stream, "s", 10, logger.NewNop())

	err := p.Report(context.Background(), dto.ScoredArticle{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
