// Package extractor turns raw headline responses into article records.
package extractor

import (
	"encoding/json"
	"strings"

	"golang-news-trader/internal/entity"
	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/common"
)

// Extractor produces an ordered, capped list of articles from raw response text.
// A short or malformed input yields a short list; only formats that cannot be
// interpreted at all return an error wrapping dto.ErrExtraction.
type Extractor interface {
	Extract(raw string) ([]entity.Article, error)
}

// JSONExtractor decodes the NewsAPI response structurally.
type JSONExtractor struct {
	maxArticles int
}

// NewJSONExtractor creates a structural extractor. A cap outside 1..common.MaxArticles falls back to common.MaxArticles.
func NewJSONExtractor(maxArticles int) *JSONExtractor {
	if maxArticles <= 0 || maxArticles > common.MaxArticles {
		maxArticles = common.MaxArticles
	}
	return &JSONExtractor{maxArticles: maxArticles}
}

// Extract walks the top-level object to the "articles" array and decodes its
// elements one at a time. Decoding stops at the first element missing
// publishedAt or title, or at the first syntax error.
func (e *JSONExtractor) Extract(raw string) ([]entity.Article, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	if !seekArticles(dec) {
		return []entity.Article{}, nil
	}

	articles := make([]entity.Article, 0, e.maxArticles)
	for dec.More() {
		var item dto.NewsAPIArticle
		if err := dec.Decode(&item); err != nil {
			break
		}
		if item.PublishedAt == nil || item.Title == nil {
			break
		}
		article := entity.Article{
			PublishedAt: *item.PublishedAt,
			Title:       *item.Title,
		}
		if item.URL != nil {
			article.URL = *item.URL
		}
		articles = append(articles, article)
	}

	return truncate(articles, e.maxArticles), nil
}

// seekArticles advances dec to just inside the top-level "articles" array.
func seekArticles(dec *json.Decoder) bool {
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return false
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return false
		}
		key, ok := keyTok.(string)
		if !ok {
			return false
		}
		if key != "articles" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return false
			}
			continue
		}

		tok, err := dec.Token()
		return err == nil && tok == json.Delim('[')
	}
	return false
}

func truncate(articles []entity.Article, max int) []entity.Article {
	if len(articles) > max {
		return articles[:max]
	}
	return articles
}
