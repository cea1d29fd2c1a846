package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
)

// WebhookPlatform posts announcements to an incoming-webhook URL. The body
// carries both "text" and "content" so Slack and Discord accept it.
type WebhookPlatform struct {
	name   string
	url    string
	client *http.Client
}

func NewWebhookPlatform(name, url string, timeout time.Duration) *WebhookPlatform {
	return &WebhookPlatform{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (w *WebhookPlatform) Name() string { return w.name }

type webhookBody struct {
	Text    string `json:"text"`
	Content string `json:"content"`
	EventID string `json:"event_id"`
	URL     string `json:"url"`
}

func (w *WebhookPlatform) Post(ctx context.Context, p domain.SocialPayload) error {
	text := announcement(p)
	body, err := json.Marshal(webhookBody{Text: text, Content: text, EventID: p.EventID, URL: p.URL})
	if err != nil {
		return fmt.Errorf("encode webhook body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("post webhook: unexpected status %d", resp.StatusCode)
	}
	return nil
}
