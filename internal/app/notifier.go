// internal/app/notifier.go
package app

import (
	"context"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Notifier delivers a message to the configured chat. It never reports failure
// to the caller.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// TelegramNotifier sends messages to a single Telegram chat.
type TelegramNotifier struct {
	client  domainTelegram.Client
	chatID  int64
	limiter *rate.Limiter
	logger  *logrus.Entry
}

// NewTelegramNotifier returns a notifier limited to ratePerSec sends per second.
// A non-positive rate disables limiting.
func NewTelegramNotifier(client domainTelegram.Client, chatID int64, ratePerSec float64, logger *logrus.Entry) *TelegramNotifier {
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}
	return &TelegramNotifier{
		client:  client,
		chatID:  chatID,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.WithField("chat_id", chatID),
	}
}

func (n *TelegramNotifier) Notify(ctx context.Context, message string) {
	logCtx := n.logger.WithField("message", message)

	if err := n.limiter.Wait(ctx); err != nil {
		logCtx.WithError(err).Error("Message not sent to Telegram: rate limiter wait aborted")
		return
	}
	if err := n.client.SendMessage(n.chatID, message); err != nil {
		logCtx.WithError(err).Error("Failed to send message to Telegram")
		return
	}
	logCtx.Info("Message sent to Telegram")
}
