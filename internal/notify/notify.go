// Package notify delivers best-effort customer notifications about order
// item transitions. Delivery failures are logged and dropped; they must
// never surface into the request that produced the notification.
package notify

import (
	"context"
	"fmt"

	"brandpanel/internal/fulfillment"
)

// CustomerNotification describes one item status transition for the
// customer who placed the order.
type CustomerNotification struct {
	NotificationID string `json:"notificationId"`
	OrderID        string `json:"orderId"`
	ItemID         string `json:"itemId"`
	ProductLabel   string `json:"productLabel"`
	OldStatus      string `json:"oldStatus"`
	NewStatus      string `json:"newStatus"`
}

// Sender accepts a notification for delivery. Implementations may be
// asynchronous; callers treat errors as log-only.
type Sender interface {
	NotifyCustomer(ctx context.Context, n CustomerNotification) error
}

// Message renders the customer-facing text for the transition.
func (n CustomerNotification) Message() string {
	return fmt.Sprintf("Update on your order %s: %q is now %s (was %s).",
		n.OrderID, n.ProductLabel, statusLabel(n.NewStatus), statusLabel(n.OldStatus))
}

func statusLabel(status string) string {
	switch fulfillment.ItemStatus(status) {
	case fulfillment.ItemPending:
		return "awaiting confirmation"
	case fulfillment.ItemProcessing:
		return "being prepared"
	case fulfillment.ItemShipped:
		return "shipped"
	case fulfillment.ItemDelivered:
		return "delivered"
	case fulfillment.ItemCancelled:
		return "cancelled"
	case fulfillment.ItemReturned:
		return "returned"
	}
	return status
}
