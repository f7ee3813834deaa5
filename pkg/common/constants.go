package common

const (
	RedisStreamNewsRecommendation = "news.recommendation"

	NewsAPIBaseURL      = "https://newsapi.org/v2"
	NewsAPITopHeadlines = "/top-headlines"
	NewsCategory        = "technology"
	NewsPageSize        = 10

	SentimentServiceURL = "http://127.0.0.1:5000/analyze"

	UserAgent = "SimpleNewsTrader/1.0"

	// MaxArticles caps how many records a single run extracts and scores.
	MaxArticles = 10

	EnvNewsAPIKey = "NEWSAPI_KEY"
)
