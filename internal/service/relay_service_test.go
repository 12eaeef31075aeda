package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/internal/repository/memory"
	"portfolio-chat-be/pkg/telegram"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noopLogger satisfies logger.ILogger for service tests.
type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }
func (noopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}

func newTestRelayService(bot *telegram.Client, replies *memory.ReplyRepository) IRelayService {
	return NewRelayService(bot, replies, nil, nil, "RELAY_REPLY_STORED", nil, noopLogger{})
}

func TestSendMissingCredentials(t *testing.T) {
	svc := newTestRelayService(telegram.NewClient("", "", ""), memory.NewReplyRepository())

	err := svc.Send(context.Background(), &dto.SendMessageRequest{SessionId: "s1", Message: "hi"})
	require.Error(t, err)

	fiberErr, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusInternalServerError, fiberErr.Code)
}

func TestSendTagsSession(t *testing.T) {
	var sentText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		sentText, _ = body["text"].(string)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	bot := telegram.NewClient("tok", "chat", server.URL)
	svc := newTestRelayService(bot, memory.NewReplyRepository())

	err := svc.Send(context.Background(), &dto.SendMessageRequest{
		SessionId: "session_abc_123",
		Message:   "is the TaraG app open source?",
	})
	require.NoError(t, err)
	assert.Equal(t, "[session: session_abc_123]\nis the TaraG app open source?", sentText)
}

func TestSendTelegramFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"chat not found"}`))
	}))
	defer server.Close()

	bot := telegram.NewClient("tok", "wrong-chat", server.URL)
	svc := newTestRelayService(bot, memory.NewReplyRepository())

	err := svc.Send(context.Background(), &dto.SendMessageRequest{SessionId: "s1", Message: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestHandleUpdateStoresTaggedReply(t *testing.T) {
	replies := memory.NewReplyRepository()
	svc := newTestRelayService(telegram.NewClient("tok", "chat", ""), replies)

	handled, err := svc.HandleUpdate(context.Background(), &telegram.Update{
		Message: &telegram.Message{Text: "[session: session_abc_123] Yes, it is on my GitHub!"},
	})
	require.NoError(t, err)
	assert.True(t, handled)

	reply, found, err := replies.Consume(context.Background(), "session_abc_123")
	require.NoError(t, err)
	require.True(t, found)
	// Session tag stripped and whitespace trimmed
	assert.Equal(t, "Yes, it is on my GitHub!", reply)
}

func TestHandleUpdateIgnoresUnrelatedTraffic(t *testing.T) {
	tests := []struct {
		name   string
		update *telegram.Update
	}{
		{"nil update", nil},
		{"no message", &telegram.Update{}},
		{"no session tag", &telegram.Update{Message: &telegram.Message{Text: "just chatting"}}},
		{"tag with empty reply", &telegram.Update{Message: &telegram.Message{Text: "[session: s1]   "}}},
		{"empty session id", &telegram.Update{Message: &telegram.Message{Text: "[session:  ] hello"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replies := memory.NewReplyRepository()
			svc := newTestRelayService(telegram.NewClient("tok", "chat", ""), replies)

			handled, err := svc.HandleUpdate(context.Background(), tt.update)
			require.NoError(t, err)
			assert.False(t, handled)
		})
	}
}

func TestConsumeReply(t *testing.T) {
	replies := memory.NewReplyRepository()
	svc := newTestRelayService(telegram.NewClient("tok", "chat", ""), replies)
	ctx := context.Background()

	// Nothing waiting
	reply, err := svc.ConsumeReply(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, reply)

	svc.HandleUpdate(ctx, &telegram.Update{
		Message: &telegram.Message{Text: "[session: s1] here you go"},
	})

	reply, err = svc.ConsumeReply(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, "here you go", *reply)

	// Consumed exactly once
	reply, err = svc.ConsumeReply(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, reply)
}
