package rewrite

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// HTTPProvider posts {question, content} to an external rewrite service
// (e.g. a hosted model space) and returns its text. The service is swappable
// by endpoint; it is never allowed to fail the request.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
}

func NewHTTPProvider(endpoint string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type rewriteRequest struct {
	Question string `json:"question"`
	Content  string `json:"content"`
}

type rewriteResponse struct {
	Text string `json:"text"`
}

func (p *HTTPProvider) Rewrite(ctx context.Context, question, content string) string {
	body, err := json.Marshal(rewriteRequest{Question: question, Content: content})
	if err != nil {
		return content
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return content
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		log.Printf("[WARN] Rewrite service unreachable, returning original text: %v", err)
		return content
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.Printf("[WARN] Rewrite service returned status %d, returning original text", res.StatusCode)
		return content
	}

	var parsed rewriteResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return content
	}
	if parsed.Text == "" {
		return content
	}
	return parsed.Text
}
