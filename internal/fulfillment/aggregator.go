// Package fulfillment derives order-level fulfillment state from per-item
// statuses. It is pure computation: callers load the order, apply an update
// here, then persist and notify based on the result.
package fulfillment

import "fmt"

// ItemState is the snapshot of one line item the aggregator works on.
type ItemState struct {
	ItemID  string
	BrandID string
	Status  ItemStatus
}

// UpdateResult tells the caller what to persist and whether the customer
// must be told about the item transition.
type UpdateResult struct {
	OldItemStatus        ItemStatus
	NewItemStatus        ItemStatus
	NotificationRequired bool
	OverallStatusChanged bool
	NewOverallStatus     OverallStatus
}

// InvalidStatusError reports a requested status outside the enumeration.
type InvalidStatusError struct {
	Value string
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid item status: %q", e.Value)
}

// ItemNotFoundError reports that the target item is not in the order or not
// owned by the requesting brand. The message never distinguishes the two
// cases, so a brand cannot probe for other brands' items.
type ItemNotFoundError struct {
	ItemID string
}

func (e ItemNotFoundError) Error() string {
	return "order item not found"
}

// ApplyItemStatusUpdate validates a single-item status change against the
// full pre-update item set of the order and recomputes the overall status.
//
// items must contain every item of the order, including the target in its
// pre-update state. Nothing is mutated; persistence is the caller's job, and
// the notification must only go out after the item write is committed.
func ApplyItemStatusUpdate(itemID, requestingBrandID string, newStatus ItemStatus, items []ItemState, currentOverall OverallStatus) (UpdateResult, error) {
	if !newStatus.Valid() {
		return UpdateResult{}, InvalidStatusError{Value: string(newStatus)}
	}

	target := -1
	for i, item := range items {
		if item.ItemID == itemID && item.BrandID == requestingBrandID {
			target = i
			break
		}
	}
	if target < 0 {
		return UpdateResult{}, ItemNotFoundError{ItemID: itemID}
	}

	oldStatus := items[target].Status

	updated := make([]ItemState, len(items))
	copy(updated, items)
	updated[target].Status = newStatus

	overall := DeriveOverallStatus(updated, currentOverall)

	return UpdateResult{
		OldItemStatus:        oldStatus,
		NewItemStatus:        newStatus,
		NotificationRequired: newStatus != oldStatus,
		OverallStatusChanged: overall != currentOverall,
		NewOverallStatus:     overall,
	}, nil
}

// DeriveOverallStatus maps the multiset of item statuses to an overall order
// status. Rules are evaluated in order, first match wins:
//
//  1. every item delivered            -> delivered
//  2. every item shipped or delivered -> shipped
//  3. any item pending or processing  -> processing
//  4. every item cancelled            -> cancelled
//  5. every item returned             -> refunded
//
// When no rule matches (mixed cancelled/returned with nothing in flight) the
// current stored status is retained. An empty item set also retains current;
// orders without items should not occur.
func DeriveOverallStatus(items []ItemState, current OverallStatus) OverallStatus {
	if len(items) == 0 {
		return current
	}

	var pending, processing, shipped, delivered, cancelled, returned int
	for _, item := range items {
		switch item.Status {
		case ItemPending:
			pending++
		case ItemProcessing:
			processing++
		case ItemShipped:
			shipped++
		case ItemDelivered:
			delivered++
		case ItemCancelled:
			cancelled++
		case ItemReturned:
			returned++
		}
	}

	total := len(items)
	switch {
	case delivered == total:
		return OverallDelivered
	case shipped+delivered == total:
		return OverallShipped
	case pending+processing > 0:
		return OverallProcessing
	case cancelled == total:
		return OverallCancelled
	case returned == total:
		return OverallRefunded
	}

	return current
}
