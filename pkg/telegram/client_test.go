package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c := NewClient("123:abc", "4567", server.URL)
	if err := c.SendMessage(context.Background(), "hello <b>there</b>"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if gotPath != "/bot123:abc/sendMessage" {
		t.Errorf("path = %s", gotPath)
	}
	if gotBody.ChatID != "4567" {
		t.Errorf("chat_id = %s, want 4567", gotBody.ChatID)
	}
	if gotBody.Text != "hello <b>there</b>" {
		t.Errorf("text = %q", gotBody.Text)
	}
	if gotBody.ParseMode != "HTML" {
		t.Errorf("parse_mode = %s, want HTML", gotBody.ParseMode)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer server.Close()

	c := NewClient("123:abc", "999", server.URL)
	err := c.SendMessage(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error from Telegram API failure")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error %q missing Telegram description", err)
	}
}

func TestConfigured(t *testing.T) {
	if NewClient("", "", "").Configured() {
		t.Error("empty credentials reported as configured")
	}
	if NewClient("tok", "", "").Configured() {
		t.Error("missing chat id reported as configured")
	}
	if !NewClient("tok", "chat", "").Configured() {
		t.Error("full credentials reported as not configured")
	}
}
