package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WebhookClient posts notifications to an external delivery service (SMS,
// email, push — whatever sits behind the webhook).
type WebhookClient struct {
	URL        string
	HTTPClient *http.Client
}

type webhookPayload struct {
	NotificationID string `json:"notificationId"`
	OrderID        string `json:"orderId"`
	Message        string `json:"message"`
}

type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{
		URL: url,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NotifyCustomer delivers one notification synchronously. Used as the
// delivery half of the queue worker rather than directly from handlers.
func (c *WebhookClient) NotifyCustomer(ctx context.Context, n CustomerNotification) error {
	payload := webhookPayload{
		NotificationID: n.NotificationID,
		OrderID:        n.OrderID,
		Message:        n.Message(),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(body))
	}

	var response webhookResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if !response.Success {
		return fmt.Errorf("webhook rejected notification: %s", response.Message)
	}

	return nil
}
