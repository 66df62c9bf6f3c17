package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"btc-probo-bot/internal/logger"
)

// Telegram pushes advisory messages to a single chat. Delivery is best
// effort: a dropped alert must never take the advisory loop down.
type Telegram struct {
	bot    *bot.Bot
	chatID string
}

// NewTelegramFromEnv builds a notifier from TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID. Returns (nil, nil) when the token is unset so
// callers can treat notifications as disabled.
func NewTelegramFromEnv() (*Telegram, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, nil
	}
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if chatID == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Telegram{bot: b, chatID: chatID}, nil
}

// Notify sends a Markdown message to the configured chat. Failures are
// logged and swallowed.
func (t *Telegram) Notify(ctx context.Context, text string) {
	if t == nil {
		return
	}
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		logger.ErrorWithErr(ctx, "Telegram send failed", err, "chat_id", t.chatID)
		return
	}
	logger.Debug(ctx, "Telegram message sent", "chat_id", t.chatID, "chars", len(text))
}
