package dto

import "encoding/json"

// SentimentRequest is the body posted to the sentiment service.
type SentimentRequest struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// SentimentResponse is the subset of the sentiment service reply that is read.
type SentimentResponse struct {
	Sentiment *float64        `json:"sentiment"`
	Tokens    json.RawMessage `json:"tokens"`
}

// SentimentResult is the score for one headline.
// Tokens holds the explanation array verbatim and is never decoded.
type SentimentResult struct {
	Score    float64 `json:"score"`
	Tokens   string  `json:"tokens,omitempty"`
	Degraded bool    `json:"degraded"`
}

// NeutralSentiment is the fallback used whenever scoring fails.
func NeutralSentiment() SentimentResult {
	return SentimentResult{Score: 0.0, Degraded: true}
}
