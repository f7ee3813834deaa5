package service

import (
	"golang-news-trader/internal/entity"
)

const (
	DefaultBuyThreshold  = 0.2
	DefaultSellThreshold = -0.2
)

// Decide maps a sentiment score to a recommendation using the default thresholds.
// Both boundaries are exclusive, so exactly 0.2 and -0.2 are HOLD.
func Decide(score float64) entity.Recommendation {
	return DecideWithThresholds(score, DefaultBuyThreshold, DefaultSellThreshold)
}

// DecideWithThresholds is Decide with configurable bounds.
func DecideWithThresholds(score, buy, sell float64) entity.Recommendation {
	switch {
	case score > buy:
		return entity.RecommendationBuy
	case score < sell:
		return entity.RecommendationSell
	default:
		return entity.RecommendationHold
	}
}
