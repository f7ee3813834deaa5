package config

import (
	"fmt"
	"time"

	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/common"
	"golang-news-trader/pkg/config"
)

const (
	SourceNewsAPI = "newsapi"
	SourceRSS     = "rss"

	ExtractorStructural = "structural"
	ExtractorScan       = "scan"
)

// News holds the headline source configuration.
type News struct {
	Source      string        `mapstructure:"source"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	UserAgent   string        `mapstructure:"user_agent"`
}

// NewsAPI holds the configuration for the NewsAPI top-headlines endpoint.
type NewsAPI struct {
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	Category string `mapstructure:"category"`
	PageSize int    `mapstructure:"page_size"`
}

// RSS holds the configuration for the feed source.
type RSS struct {
	URL string `mapstructure:"url"`
}

// Extractor selects how raw NewsAPI responses are turned into articles.
type Extractor struct {
	Mode        string `mapstructure:"mode"`
	MaxArticles int    `mapstructure:"max_articles"`
}

// Sentiment holds the configuration for the sentiment service.
type Sentiment struct {
	URL                 string        `mapstructure:"url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// Recommendation holds the decision thresholds.
type Recommendation struct {
	BuyThreshold  float64 `mapstructure:"buy_threshold"`
	SellThreshold float64 `mapstructure:"sell_threshold"`
}

// Publisher enables the Redis stream publisher.
type Publisher struct {
	Enabled bool   `mapstructure:"enabled"`
	Stream  string `mapstructure:"stream"`
}

// Telegram holds configuration for the Telegram digest.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the news trader.
type Config struct {
	App            config.App     `mapstructure:"app"`
	Logger         config.Logger  `mapstructure:"logger"`
	Redis          config.Redis   `mapstructure:"redis"`
	News           News           `mapstructure:"news"`
	NewsAPI        NewsAPI        `mapstructure:"news_api"`
	RSS            RSS            `mapstructure:"rss"`
	Extractor      Extractor      `mapstructure:"extractor"`
	Sentiment      Sentiment      `mapstructure:"sentiment"`
	Recommendation Recommendation `mapstructure:"recommendation"`
	Publisher      Publisher      `mapstructure:"publisher"`
	Telegram       Telegram       `mapstructure:"telegram"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.name":      "news-trader",
		"app.env":       "local",
		"app.version":   "dev",
		"app.time_zone": "",

		"logger.level":    "info",
		"logger.encoding": "console",

		"redis.host":           "",
		"redis.port":           6379,
		"redis.password":       "",
		"redis.db":             0,
		"redis.pool_size":      2,
		"redis.stream_max_len": 1000,

		"news.source":       SourceNewsAPI,
		"news.timeout":      15 * time.Second,
		"news.max_attempts": 2,
		"news.user_agent":   common.UserAgent,

		"news_api.base_url":  common.NewsAPIBaseURL,
		"news_api.api_key":   "",
		"news_api.category":  common.NewsCategory,
		"news_api.page_size": common.NewsPageSize,

		"rss.url": "",

		"extractor.mode":         ExtractorStructural,
		"extractor.max_articles": common.MaxArticles,

		"sentiment.url":                    common.SentimentServiceURL,
		"sentiment.timeout":                5 * time.Second,
		"sentiment.max_request_per_minute": 0,

		"recommendation.buy_threshold":  0.2,
		"recommendation.sell_threshold": -0.2,

		"publisher.enabled": false,
		"publisher.stream":  common.RedisStreamNewsRecommendation,

		"telegram.enabled":   false,
		"telegram.bot_token": "",
		"telegram.chat_id":   0,
	}
}

// Load loads the news trader configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	err := config.Load(path, &cfg,
		config.WithDefaults(defaults()),
		config.WithEnvBinding("news_api.api_key", common.EnvNewsAPIKey, "NEWS_API_API_KEY"),
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that must be present before any network activity.
func (c *Config) Validate() error {
	switch c.News.Source {
	case SourceNewsAPI:
		if c.NewsAPI.APIKey == "" {
			return fmt.Errorf("%w: %s is not set", dto.ErrConfiguration, common.EnvNewsAPIKey)
		}
	case SourceRSS:
		if c.RSS.URL == "" {
			return fmt.Errorf("%w: rss.url is required when news.source is %q", dto.ErrConfiguration, SourceRSS)
		}
	default:
		return fmt.Errorf("%w: unknown news.source %q", dto.ErrConfiguration, c.News.Source)
	}

	switch c.Extractor.Mode {
	case ExtractorStructural, ExtractorScan:
	default:
		return fmt.Errorf("%w: unknown extractor.mode %q", dto.ErrConfiguration, c.Extractor.Mode)
	}

	if c.News.MaxAttempts < 1 {
		return fmt.Errorf("%w: news.max_attempts must be at least 1", dto.ErrConfiguration)
	}
	if c.Extractor.MaxArticles < 1 || c.Extractor.MaxArticles > common.MaxArticles {
		return fmt.Errorf("%w: extractor.max_articles must be between 1 and %d", dto.ErrConfiguration, common.MaxArticles)
	}
	if c.Recommendation.SellThreshold > c.Recommendation.BuyThreshold {
		return fmt.Errorf("%w: recommendation.sell_threshold is above buy_threshold", dto.ErrConfiguration)
	}
	if c.Publisher.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("%w: redis.host is required when the publisher is enabled", dto.ErrConfiguration)
	}
	if c.Telegram.Enabled && (c.Telegram.BotToken == "" || c.Telegram.ChatID == 0) {
		return fmt.Errorf("%w: telegram.bot_token and telegram.chat_id are required when telegram is enabled", dto.ErrConfiguration)
	}
	return nil
}
