package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramReporter posts failure reports to one studio chat.
type TelegramReporter struct {
	bot    telegramSender
	chatID int64
	logger logger.Logger
}

func NewTelegramReporter(token string, chatID int64, logger logger.Logger) (*TelegramReporter, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram reports disabled")
		return &TelegramReporter{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramReporter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (r *TelegramReporter) Report(ctx context.Context, message string) {
	if r.bot == nil {
		r.logger.Debug("telegram report skipped (bot disabled)", logger.String("text", message))
		return
	}

	if r.chatID == 0 {
		r.logger.Debug("telegram report skipped (no chat_id)", logger.String("text", message))
		return
	}

	if err := ctx.Err(); err != nil {
		r.logger.Debug("telegram report skipped (context cancelled)",
			logger.Any("chat_id", r.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(r.chatID, message)

	if _, err := r.bot.Send(msg); err != nil {
		r.logger.Error("failed to send telegram report",
			logger.Any("chat_id", r.chatID),
			logger.String("error", err.Error()),
		)
	}
}
