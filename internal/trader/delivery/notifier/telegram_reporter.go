package notifier

import (
	"context"
	"fmt"

	"golang-news-trader/internal/trader/dto"
	"golang-news-trader/pkg/logger"
	"golang-news-trader/pkg/telegram"
)

// TelegramReporter collects the run and sends it as a digest on Flush.
type TelegramReporter struct {
	notifier telegram.Notifier
	log      *logger.Logger
	items    []dto.ScoredArticle
}

func NewTelegramReporter(notifier telegram.Notifier, log *logger.Logger) *TelegramReporter {
	return &TelegramReporter{notifier: notifier, log: log}
}

func (r *TelegramReporter) Name() string { return "telegram" }

func (r *TelegramReporter) Report(ctx context.Context, scored dto.ScoredArticle) error {
	r.items = append(r.items, scored)
	return nil
}

func (r *TelegramReporter) Flush(ctx context.Context) error {
	messages := telegram.FormatRecommendationsForTelegram(r.items)
	for i, msg := range messages {
		if err := r.notifier.SendMessage(msg); err != nil {
			return fmt.Errorf("failed to send telegram message part %d: %w", i+1, err)
		}
	}
	r.log.InfoContext(ctx, "Telegram digest sent",
		logger.IntField("articles", len(r.items)),
		logger.IntField("messages", len(messages)))
	r.items = nil
	return nil
}
