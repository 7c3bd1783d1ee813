package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCustomerNotificationMessageUsesReadableLabels(t *testing.T) {
	n := CustomerNotification{
		OrderID:      "64f000000000000000000001",
		ProductLabel: "Canvas Tote",
		OldStatus:    "shipped_by_brand",
		NewStatus:    "delivered_to_customer",
	}

	msg := n.Message()
	if !strings.Contains(msg, "Canvas Tote") {
		t.Fatalf("expected product label in message, got %q", msg)
	}
	if !strings.Contains(msg, "delivered") || !strings.Contains(msg, "shipped") {
		t.Fatalf("expected readable status labels, got %q", msg)
	}
	if strings.Contains(msg, "shipped_by_brand") || strings.Contains(msg, "delivered_to_customer") {
		t.Fatalf("raw enum values leaked into customer message: %q", msg)
	}
}

func TestCustomerNotificationMessageKeepsUnknownStatus(t *testing.T) {
	n := CustomerNotification{ProductLabel: "Mug", OldStatus: "pending", NewStatus: "weird"}
	if !strings.Contains(n.Message(), "weird") {
		t.Fatalf("unknown status should pass through verbatim, got %q", n.Message())
	}
}

func TestWebhookClientPostsRenderedMessage(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		_ = json.NewEncoder(w).Encode(webhookResponse{Success: true})
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL)
	err := client.NotifyCustomer(context.Background(), CustomerNotification{
		NotificationID: "n-1",
		OrderID:        "o-1",
		ProductLabel:   "Mug",
		OldStatus:      "pending",
		NewStatus:      "shipped_by_brand",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received.NotificationID != "n-1" || received.OrderID != "o-1" {
		t.Fatalf("unexpected payload: %+v", received)
	}
	if !strings.Contains(received.Message, "Mug") {
		t.Fatalf("expected rendered message, got %q", received.Message)
	}
}

func TestWebhookClientReportsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(webhookResponse{Success: false, Message: "unknown customer"})
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL)
	err := client.NotifyCustomer(context.Background(), CustomerNotification{NotificationID: "n-2"})
	if err == nil || !strings.Contains(err.Error(), "unknown customer") {
		t.Fatalf("expected rejection error, got %v", err)
	}
}

func TestWebhookClientReportsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL)
	err := client.NotifyCustomer(context.Background(), CustomerNotification{NotificationID: "n-3"})
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}
