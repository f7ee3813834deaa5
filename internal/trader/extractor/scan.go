package extractor

import (
	"strconv"
	"strings"

	"golang-news-trader/internal/entity"
	"golang-news-trader/pkg/common"
)

const (
	markerPublishedAt = `"publishedAt":"`
	markerTitle       = `"title":"`
	markerURL         = `"url":"`
)

// ScanExtractor is a forward-only marker scanner. It expects each record to
// carry publishedAt, title and url in that order and does not understand JSON
// structure: reordered fields, compact-vs-spaced separators or nested objects
// in front of the markers will truncate or corrupt the result.
type ScanExtractor struct {
	maxArticles int
}

// NewScanExtractor creates a marker scanner. A cap outside 1..common.MaxArticles falls back to common.MaxArticles.
func NewScanExtractor(maxArticles int) *ScanExtractor {
	if maxArticles <= 0 || maxArticles > common.MaxArticles {
		maxArticles = common.MaxArticles
	}
	return &ScanExtractor{maxArticles: maxArticles}
}

func (e *ScanExtractor) Extract(raw string) ([]entity.Article, error) {
	articles := make([]entity.Article, 0, e.maxArticles)
	pos := 0

	for len(articles) < e.maxArticles {
		publishedAt, next, ok := captureAfter(raw, pos, len(raw), markerPublishedAt)
		if !ok {
			break
		}
		title, titleEnd, ok := captureAfter(raw, next, len(raw), markerTitle)
		if !ok {
			break
		}

		// The url belongs to this record only if it appears before the next record starts.
		limit := len(raw)
		if idx := strings.Index(raw[titleEnd:], markerPublishedAt); idx >= 0 {
			limit = titleEnd + idx
		}
		url, _, ok := captureAfter(raw, titleEnd, limit, markerURL)
		if !ok {
			url = ""
		}

		articles = append(articles, entity.Article{
			PublishedAt: publishedAt,
			Title:       title,
			URL:         url,
		})
		pos = titleEnd
	}

	return articles, nil
}

// captureAfter finds marker in raw[from:limit] and returns the text up to the
// next unescaped quote together with the offset just past that quote.
func captureAfter(raw string, from, limit int, marker string) (string, int, bool) {
	idx := strings.Index(raw[from:limit], marker)
	if idx < 0 {
		return "", from, false
	}
	start := from + idx + len(marker)

	for i := start; i < limit; i++ {
		switch raw[i] {
		case '\\':
			i++
		case '"':
			return unescape(raw[start:i]), i + 1, true
		}
	}
	return "", from, false
}

// unescape resolves JSON string escapes, keeping the raw run when it is not a valid literal.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	if out, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return out
	}
	return s
}
