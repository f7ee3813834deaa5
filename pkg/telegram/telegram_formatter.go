package telegram

import (
	"fmt"
	"strings"

	"golang-news-trader/internal/entity"
	"golang-news-trader/internal/trader/dto"
)

const maxMessageLen = 4090

// FormatRecommendationsForTelegram renders the scored articles of a run as one or
// more Markdown messages, each within Telegram's length limit.
func FormatRecommendationsForTelegram(items []dto.ScoredArticle) []string {
	if len(items) == 0 {
		return []string{"📰 *Tech Headline Signals*\n\nNo headlines were found in this run."}
	}

	var messages []string
	var currentMessage strings.Builder
	part := 1

	startNewPart := func() {
		currentMessage.Reset()
		if part == 1 {
			currentMessage.WriteString("📰 *Tech Headline Signals* 📰\n\n")
		} else {
			currentMessage.WriteString(fmt.Sprintf("---*Tech Headline Signals Part %d*---\n\n", part))
		}
	}

	startNewPart()

	for _, item := range items {
		var entry strings.Builder
		entry.WriteString(fmt.Sprintf("%s *%s* (%.2f)\n", actionIcon(item.Recommendation), item.Recommendation, item.Sentiment.Score))
		entry.WriteString(fmt.Sprintf("🗞 %s\n", escapeMarkdown(item.Article.Title)))
		entry.WriteString(fmt.Sprintf("🕒 %s\n", item.LocalTime))
		if item.Article.HasURL() {
			entry.WriteString(fmt.Sprintf("🔗 %s\n", markdownLink("Read article", item.Article.URL)))
		}
		if item.Sentiment.Degraded {
			entry.WriteString("⚠️ _sentiment unavailable, neutral score used_\n")
		}
		entry.WriteString("\n")

		entryString := entry.String()
		if currentMessage.Len()+len(entryString) > maxMessageLen {
			messages = append(messages, currentMessage.String())
			part++
			startNewPart()
		}
		currentMessage.WriteString(entryString)
	}

	messages = append(messages, currentMessage.String())
	return messages
}

func actionIcon(r entity.Recommendation) string {
	switch r {
	case entity.RecommendationBuy:
		return "🟢"
	case entity.RecommendationSell:
		return "🔴"
	default:
		return "🟡"
	}
}

// markdownLink wraps link in an inline link so Markdown characters in the URL
// are not parsed as entities. A closing parenthesis would end the URL early.
func markdownLink(label, link string) string {
	return fmt.Sprintf("[%s](%s)", label, strings.ReplaceAll(link, ")", "%29"))
}

// escapeMarkdown neutralises the legacy Markdown control characters in free text.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")
	return replacer.Replace(s)
}
