package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-news-trader/internal/trader/dto"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceNewsAPI, cfg.News.Source)
	assert.Equal(t, 15*time.Second, cfg.News.Timeout)
	assert.Equal(t, 2, cfg.News.MaxAttempts)
	assert.Equal(t, "SimpleNewsTrader/1.0", cfg.News.UserAgent)
	assert.Equal(t, "technology", cfg.NewsAPI.Category)
	assert.Equal(t, 10, cfg.NewsAPI.PageSize)
	assert.Equal(t, 10, cfg.Extractor.MaxArticles)
	assert.Equal(t, ExtractorStructural, cfg.Extractor.Mode)
	assert.Equal(t, "http://127.0.0.1:5000/analyze", cfg.Sentiment.URL)
	assert.Equal(t, 5*time.Second, cfg.Sentiment.Timeout)
	assert.Equal(t, 0.2, cfg.Recommendation.BuyThreshold)
	assert.Equal(t, -0.2, cfg.Recommendation.SellThreshold)
	assert.False(t, cfg.Publisher.Enabled)
	assert.False(t, cfg.Telegram.Enabled)
}

func TestLoad_APIKeyFromEnvironment(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.NewsAPI.APIKey)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logger:
  level: debug
news:
  source: rss
rss:
  url: https://example.com/feed.xml
extractor:
  mode: scan
sentiment:
  timeout: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, SourceRSS, cfg.News.Source)
	assert.Equal(t, "https://example.com/feed.xml", cfg.RSS.URL)
	assert.Equal(t, ExtractorScan, cfg.Extractor.Mode)
	assert.Equal(t, 2*time.Second, cfg.Sentiment.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_CapAboveTenIsRejected(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "key")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extractor:\n  max_articles: 15\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Extractor.MaxArticles)

	err = cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, dto.ErrConfiguration)
}

func TestValidate(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "key")
	valid := func(t *testing.T) *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing api key", func(c *Config) { c.NewsAPI.APIKey = "" }},
		{"rss without url", func(c *Config) { c.News.Source = SourceRSS }},
		{"unknown source", func(c *Config) { c.News.Source = "carrier-pigeon" }},
		{"unknown extractor", func(c *Config) { c.Extractor.Mode = "regex" }},
		{"zero attempts", func(c *Config) { c.News.MaxAttempts = 0 }},
		{"zero cap", func(c *Config) { c.Extractor.MaxArticles = 0 }},
		{"cap above ten", func(c *Config) { c.Extractor.MaxArticles = 15 }},
		{"inverted thresholds", func(c *Config) { c.Recommendation.SellThreshold = 0.5 }},
		{"publisher without redis", func(c *Config) { c.Publisher.Enabled = true }},
		{"telegram without token", func(c *Config) { c.Telegram.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, dto.ErrConfiguration)
		})
	}
}
