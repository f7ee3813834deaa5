package entity

// Recommendation is the trading action derived from a headline's sentiment.
type Recommendation string

const (
	RecommendationBuy  Recommendation = "BUY"
	RecommendationSell Recommendation = "SELL"
	RecommendationHold Recommendation = "HOLD"
)

func (r Recommendation) String() string {
	switch r {
	case RecommendationBuy, RecommendationSell:
		return string(r)
	default:
		return string(RecommendationHold)
	}
}
