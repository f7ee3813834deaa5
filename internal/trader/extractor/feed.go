package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"golang-news-trader/internal/entity"
	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/common"
	"golang-news-trader/pkg/utils"
)

// FeedExtractor reads RSS, Atom or JSON Feed documents.
type FeedExtractor struct {
	maxArticles int
	parser      *gofeed.Parser
}

// NewFeedExtractor creates a feed extractor. A cap outside 1..common.MaxArticles falls back to common.MaxArticles.
func NewFeedExtractor(maxArticles int) *FeedExtractor {
	if maxArticles <= 0 || maxArticles > common.MaxArticles {
		maxArticles = common.MaxArticles
	}
	return &FeedExtractor{
		maxArticles: maxArticles,
		parser:      gofeed.NewParser(),
	}
}

// Extract keeps feed order. Items without a title or a parseable publication
// date end extraction, mirroring the mandatory-field policy of the JSON extractors.
func (e *FeedExtractor) Extract(raw string) ([]entity.Article, error) {
	feed, err := e.parser.ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse feed: %v", dto.ErrExtraction, err)
	}

	articles := make([]entity.Article, 0, e.maxArticles)
	for _, item := range feed.Items {
		if len(articles) >= e.maxArticles {
			break
		}
		if item == nil || item.PublishedParsed == nil {
			break
		}
		title := plainText(item.Title)
		if title == "" {
			break
		}
		articles = append(articles, entity.Article{
			PublishedAt: utils.FormatWireTime(*item.PublishedParsed),
			Title:       title,
			URL:         item.Link,
		})
	}
	return articles, nil
}

// plainText strips markup some feeds embed in item titles.
func plainText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
