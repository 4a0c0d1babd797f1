package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func bufferLogger(buf *bytes.Buffer) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logrus.NewEntry(l)
}

func TestTelegramNotifier_LogsSuccess(t *testing.T) {
	var buf bytes.Buffer
	tg := &MockTelegramClient{}

	NewTelegramNotifier(tg, 42, 0, bufferLogger(&buf)).Notify(context.Background(), "hello")

	assert.Equal(t, []string{"hello"}, tg.Sent())
	assert.Equal(t, []int64{42}, tg.chatIDs)
	assert.Contains(t, buf.String(), "level=info")
}

func TestTelegramNotifier_SwallowsSendError(t *testing.T) {
	var buf bytes.Buffer
	tg := &MockTelegramClient{SendErr: errors.New("telegram: Forbidden: bot was blocked by the user (403)")}

	NewTelegramNotifier(tg, 42, 0, bufferLogger(&buf)).Notify(context.Background(), "hello")

	assert.Empty(t, tg.Sent())
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "bot was blocked")
}

func TestTelegramNotifier_CancelledContextSkipsSend(t *testing.T) {
	var buf bytes.Buffer
	tg := &MockTelegramClient{}
	n := NewTelegramNotifier(tg, 42, 0.001, bufferLogger(&buf))

	n.Notify(context.Background(), "first") // consumes the single burst token

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.Notify(ctx, "second")

	assert.Equal(t, []string{"first"}, tg.Sent())
	assert.Contains(t, buf.String(), "rate limiter wait aborted")
}
