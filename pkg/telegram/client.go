package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Client is a minimal Telegram Bot API client; the relay only needs
// sendMessage.
type Client struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

// NewClient creates a bot client targeting a fixed chat (the site owner).
// baseURL is overridable for tests.
func NewClient(token, chatID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		token:   token,
		chatID:  chatID,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether bot credentials are present.
func (c *Client) Configured() bool {
	return c.token != "" && c.chatID != ""
}

// SendMessage delivers text to the configured chat. Upstream errors carry
// the Telegram description so callers can pass details through.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Telegram API: %w", err)
	}
	defer res.Body.Close()

	var parsed apiResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			return fmt.Errorf("telegram API returned status %d", res.StatusCode)
		}
		return fmt.Errorf("failed to decode Telegram response: %w", err)
	}

	if !parsed.OK {
		return fmt.Errorf("telegram API error %d: %s", parsed.ErrorCode, parsed.Description)
	}
	return nil
}
