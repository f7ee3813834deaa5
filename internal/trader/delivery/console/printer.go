package console

import (
	"context"
	"fmt"
	"io"

	"golang-news-trader/internal/trader/dto"
)

// Banner is written once before the first article.
const Banner = "Fetching latest 10 tech industry news headlines...\n\n"

// Printer writes the human readable report, one block per article separated by a blank line.
type Printer struct {
	out     io.Writer
	printed int
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Name() string { return "console" }

// PrintBanner writes the run header.
func (p *Printer) PrintBanner() error {
	_, err := io.WriteString(p.out, Banner)
	return err
}

func (p *Printer) Report(ctx context.Context, scored dto.ScoredArticle) error {
	if p.printed > 0 {
		if _, err := io.WriteString(p.out, "\n"); err != nil {
			return err
		}
	}
	p.printed++

	if _, err := fmt.Fprintf(p.out, "[%s] \"%s\"\n", scored.LocalTime, scored.Article.Title); err != nil {
		return err
	}
	if scored.Article.HasURL() {
		if _, err := fmt.Fprintf(p.out, "Article URL: %s\n", scored.Article.URL); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(p.out, "Recommendation: %s (sentiment=%.2f)\n", scored.Recommendation, scored.Sentiment.Score); err != nil {
		return err
	}
	if scored.Sentiment.Tokens != "" {
		if _, err := fmt.Fprintf(p.out, "  Explanation tokens: %s\n", scored.Sentiment.Tokens); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) Flush(ctx context.Context) error { return nil }
