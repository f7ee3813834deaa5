package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-news-trader/internal/entity"
	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/logger"
)

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) SendMessage(text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

func TestTelegramReporter_SendsDigestOnFlush(t *testing.T) {
	n := &fakeNotifier{}
	r := NewTelegramReporter(n, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, r.Report(ctx, dto.ScoredArticle{
		Article:        entity.Article{Title: "Chips rally"},
		Sentiment:      dto.SentimentResult{Score: 0.5},
		Recommendation: entity.RecommendationBuy,
	}))
	assert.Empty(t, n.sent, "nothing is sent before flush")

	require.NoError(t, r.Flush(ctx))
	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0], "Chips rally")
	assert.Contains(t, n.sent[0], "*BUY*")
}

func TestTelegramReporter_SendError(t *testing.T) {
	r := NewTelegramReporter(&fakeNotifier{err: errors.New("forbidden")}, logger.NewNop())
	err := r.Flush(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}
