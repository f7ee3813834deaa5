package telegram

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-news-trader/internal/entity"
	"golang-news-trader/internal/trader/dto"
)

func TestFormatRecommendationsForTelegram_Empty(t *testing.T) {
	messages := FormatRecommendationsForTelegram(nil)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "No headlines")
}

func TestFormatRecommendationsForTelegram_Entry(t *testing.T) {
	messages := FormatRecommendationsForTelegram([]dto.ScoredArticle{
		{
			Article:        entity.Article{Title: "Chips_rally *now*", URL: "http://x"},
			Sentiment:      dto.SentimentResult{Score: 0.5},
			Recommendation: entity.RecommendationBuy,
			LocalTime:      "2023-05-12 15:30:45 UTC",
		},
		{
			Article:        entity.Article{Title: "Service down"},
			Sentiment:      dto.NeutralSentiment(),
			Recommendation: entity.RecommendationHold,
			LocalTime:      "2023-05-12 16:00:00 UTC",
		},
	})
	require.Len(t, messages, 1)
	msg := messages[0]
	assert.Contains(t, msg, "🟢 *BUY* (0.50)")
	assert.Contains(t, msg, `Chips\_rally \*now\*`)
	assert.Contains(t, msg, "🔗 [Read article](http://x)")
	assert.Contains(t, msg, "🟡 *HOLD* (0.00)")
	assert.Contains(t, msg, "neutral score used")
}

func TestFormatRecommendationsForTelegram_LinkWithMarkdownCharacters(t *testing.T) {
	messages := FormatRecommendationsForTelegram([]dto.ScoredArticle{{
		Article:        entity.Article{Title: "Chips", URL: "https://example.com/chips_rally_(2023)"},
		Recommendation: entity.RecommendationHold,
	}})
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "🔗 [Read article](https://example.com/chips_rally_(2023%29)\n")
	assert.NotContains(t, messages[0], "🔗 https://")
}

func TestFormatRecommendationsForTelegram_Splits(t *testing.T) {
	var items []dto.ScoredArticle
	for i := 0; i < 60; i++ {
		items = append(items, dto.ScoredArticle{
			Article:        entity.Article{Title: fmt.Sprintf("%d %s", i, strings.Repeat("x", 100)), URL: "https://example.com/" + strings.Repeat("y", 40)},
			Sentiment:      dto.SentimentResult{Score: -0.5},
			Recommendation: entity.RecommendationSell,
			LocalTime:      "2023-05-12 15:30:45 UTC",
		})
	}

	messages := FormatRecommendationsForTelegram(items)
	require.Greater(t, len(messages), 1)
	for _, m := range messages {
		assert.LessOrEqual(t, len(m), maxMessageLen)
	}
	assert.True(t, strings.HasPrefix(messages[1], "---*Tech Headline Signals Part 2*---"))
}
