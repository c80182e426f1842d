package tg

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/logger"
)

const failureTemplate = "btc-tracker stopped: %v"

type config interface {
	Token() string
	ChatID() int64
}

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier tells a Telegram chat that the poller has stopped for good.
type Notifier struct {
	client messageSender
	chatID int64
}

func New(cfg config) (*Notifier, error) {
	client, err := tgbotapi.NewBotAPI(cfg.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Notifier{client: client, chatID: cfg.ChatID()}, nil
}

func (n *Notifier) SendMessage(text string) error {
	_, err := n.client.Send(tgbotapi.NewMessage(n.chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (n *Notifier) NotifyFailure(ctx context.Context, cause error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Info("sending failure notification", zap.Int64("chat", n.chatID))
	return n.SendMessage(fmt.Sprintf(failureTemplate, cause))
}
