package tg

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.err
}

func Test_OnNotifyFailure_ShouldSendCauseToChat(t *testing.T) {
	sender := &recordingSender{}
	n := &Notifier{client: sender, chatID: 42}

	require.NoError(t, n.NotifyFailure(context.Background(), errors.New("fetch price: connection refused")))

	require.Len(t, sender.sent, 1)
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "btc-tracker stopped: fetch price: connection refused", msg.Text)
}

func Test_OnSendError_ShouldWrap(t *testing.T) {
	n := &Notifier{client: &recordingSender{err: errors.New("unauthorized")}, chatID: 42}

	err := n.NotifyFailure(context.Background(), errors.New("boom"))
	assert.EqualError(t, err, "client.Send: unauthorized")
}

func Test_OnExpiredContext_ShouldNotSend(t *testing.T) {
	sender := &recordingSender{}
	n := &Notifier{client: sender, chatID: 42}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, n.NotifyFailure(ctx, errors.New("boom")))
	assert.Empty(t, sender.sent)
}
