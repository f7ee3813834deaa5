package dto

import (
	"golang-news-trader/internal/entity"
)

// ScoredArticle is an article together with everything derived from it in one run.
type ScoredArticle struct {
	Article        entity.Article        `json:"article"`
	Sentiment      SentimentResult       `json:"sentiment"`
	Recommendation entity.Recommendation `json:"recommendation"`
	LocalTime      string                `json:"local_time"`
}

// RunSummary counts the outcome of one pipeline run.
type RunSummary struct {
	Extracted int `json:"extracted"`
	Buy       int `json:"buy"`
	Sell      int `json:"sell"`
	Hold      int `json:"hold"`
	Degraded  int `json:"degraded"`
}

// Add records one scored article in the summary.
func (s *RunSummary) Add(scored ScoredArticle) {
	switch scored.Recommendation {
	case entity.RecommendationBuy:
		s.Buy++
	case entity.RecommendationSell:
		s.Sell++
	default:
		s.Hold++
	}
	if scored.Sentiment.Degraded {
		s.Degraded++
	}
}
