package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"notevision-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) record(level, module, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf("%s %s: %s", level, module, msg))
}

func (l *recordingLogger) Debug(module, msg string, details map[string]interface{}) {
	l.record("DEBUG", module, msg)
}

func (l *recordingLogger) Info(module, msg string, details map[string]interface{}) {
	l.record("INFO", module, msg)
}

func (l *recordingLogger) Warn(module, msg string, details map[string]interface{}) {
	l.record("WARN", module, msg)
}

func (l *recordingLogger) Error(module, msg string, details map[string]interface{}) {
	l.record("ERROR", module, msg)
}

func (l *recordingLogger) Sync() error { return nil }

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

type fakeEmailService struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeEmailService) SendShareNotification(toEmail, ownerEmail, notebookName, permission string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toEmail)
	return f.err
}

func (f *fakeEmailService) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func setupConsumer(t *testing.T, emails *fakeEmailService, logs *recordingLogger) *gochannel.GoChannel {
	t.Helper()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	consumer := NewConsumerService(pubSub, "NOTEBOOK_SHARED", emails, logs)
	require.NoError(t, consumer.Consume(context.Background()))
	return pubSub
}

func publishShare(t *testing.T, pubSub *gochannel.GoChannel, payload dto.NotebookSharedMessage) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish("NOTEBOOK_SHARED", message.NewMessage(watermill.NewUUID(), raw)))
}

func TestConsumerSendsShareNotification(t *testing.T) {
	emails := &fakeEmailService{}
	logs := &recordingLogger{}
	pubSub := setupConsumer(t, emails, logs)
	defer pubSub.Close()

	publishShare(t, pubSub, dto.NotebookSharedMessage{
		NotebookId:     "3a0cfa57-70f8-4b72-9021-5b04d0fd9f3c",
		NotebookName:   "Calculus",
		OwnerEmail:     "owner@example.com",
		RecipientEmail: "friend@example.com",
		Permission:     "view",
	})

	require.Eventually(t, func() bool {
		return emails.sentCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, logs.contains("Sending share notification"))
}

func TestConsumerAcksMalformedMessageWithoutSendingEmail(t *testing.T) {
	emails := &fakeEmailService{}
	logs := &recordingLogger{}
	pubSub := setupConsumer(t, emails, logs)
	defer pubSub.Close()

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json at all"))
	require.NoError(t, pubSub.Publish("NOTEBOOK_SHARED", msg))

	require.Eventually(t, func() bool {
		return logs.contains("Failed to unmarshal share message")
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, emails.sentCount())
}

func TestConsumerLogsEmailFailureAndMovesOn(t *testing.T) {
	emails := &fakeEmailService{err: errors.New("smtp down")}
	logs := &recordingLogger{}
	pubSub := setupConsumer(t, emails, logs)
	defer pubSub.Close()

	publishShare(t, pubSub, dto.NotebookSharedMessage{
		NotebookId:     "3a0cfa57-70f8-4b72-9021-5b04d0fd9f3c",
		NotebookName:   "Calculus",
		OwnerEmail:     "owner@example.com",
		RecipientEmail: "friend@example.com",
		Permission:     "edit",
	})

	require.Eventually(t, func() bool {
		return logs.contains("Failed to send share notification")
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, emails.sentCount())
}
