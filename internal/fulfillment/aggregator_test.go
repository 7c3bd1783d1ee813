package fulfillment

import (
	"errors"
	"testing"
)

func twoBrandOrder(statusA, statusB ItemStatus) []ItemState {
	return []ItemState{
		{ItemID: "item-a", BrandID: "brand-a", Status: statusA},
		{ItemID: "item-b", BrandID: "brand-b", Status: statusB},
	}
}

func TestApplyItemStatusUpdateSameValueNeedsNoNotification(t *testing.T) {
	statuses := []ItemStatus{ItemPending, ItemProcessing, ItemShipped, ItemDelivered, ItemCancelled, ItemReturned}
	for _, s := range statuses {
		items := twoBrandOrder(s, ItemPending)
		res, err := ApplyItemStatusUpdate("item-a", "brand-a", s, items, OverallProcessing)
		if err != nil {
			t.Fatalf("unexpected error for status %s: %v", s, err)
		}
		if res.NotificationRequired {
			t.Fatalf("expected no notification when re-applying %s", s)
		}
		if res.OldItemStatus != s || res.NewItemStatus != s {
			t.Fatalf("expected old=new=%s, got old=%s new=%s", s, res.OldItemStatus, res.NewItemStatus)
		}
	}
}

func TestApplyItemStatusUpdateChangeRequiresNotification(t *testing.T) {
	statuses := []ItemStatus{ItemPending, ItemProcessing, ItemShipped, ItemDelivered, ItemCancelled, ItemReturned}
	for _, from := range statuses {
		for _, to := range statuses {
			if from == to {
				continue
			}
			items := twoBrandOrder(from, ItemPending)
			res, err := ApplyItemStatusUpdate("item-a", "brand-a", to, items, OverallProcessing)
			if err != nil {
				t.Fatalf("unexpected error for %s -> %s: %v", from, to, err)
			}
			if !res.NotificationRequired {
				t.Fatalf("expected notification for %s -> %s", from, to)
			}
			if res.OldItemStatus != from || res.NewItemStatus != to {
				t.Fatalf("expected %s -> %s, got %s -> %s", from, to, res.OldItemStatus, res.NewItemStatus)
			}
		}
	}
}

func TestApplyItemStatusUpdateRejectsUnknownStatus(t *testing.T) {
	items := twoBrandOrder(ItemPending, ItemPending)
	_, err := ApplyItemStatusUpdate("item-a", "brand-a", ItemStatus("lost_in_transit"), items, OverallProcessing)

	var invalid InvalidStatusError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStatusError, got %v", err)
	}
	if invalid.Value != "lost_in_transit" {
		t.Fatalf("expected rejected value in error, got %q", invalid.Value)
	}
	if items[0].Status != ItemPending {
		t.Fatal("input slice must not be mutated on failure")
	}
}

func TestApplyItemStatusUpdateRejectsForeignBrand(t *testing.T) {
	items := twoBrandOrder(ItemPending, ItemPending)

	// item-b exists but belongs to brand-b
	_, err := ApplyItemStatusUpdate("item-b", "brand-a", ItemShipped, items, OverallProcessing)
	var notFound ItemNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ItemNotFoundError for cross-brand update, got %v", err)
	}

	_, err = ApplyItemStatusUpdate("no-such-item", "brand-a", ItemShipped, items, OverallProcessing)
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ItemNotFoundError for missing item, got %v", err)
	}

	if items[1].Status != ItemPending {
		t.Fatal("rejected update must leave statuses unchanged")
	}
}

func TestApplyItemStatusUpdateDoesNotMutateInput(t *testing.T) {
	items := twoBrandOrder(ItemPending, ItemShipped)
	res, err := ApplyItemStatusUpdate("item-a", "brand-a", ItemDelivered, items, OverallProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Status != ItemPending {
		t.Fatalf("input slice mutated: %s", items[0].Status)
	}
	if res.NewItemStatus != ItemDelivered {
		t.Fatalf("expected delivered, got %s", res.NewItemStatus)
	}
}

func TestDeriveOverallStatusPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		items   []ItemStatus
		current OverallStatus
		want    OverallStatus
	}{
		{"all delivered", []ItemStatus{ItemDelivered, ItemDelivered}, OverallShipped, OverallDelivered},
		{"shipped and delivered mix", []ItemStatus{ItemShipped, ItemDelivered}, OverallProcessing, OverallShipped},
		{"all shipped", []ItemStatus{ItemShipped, ItemShipped}, OverallProcessing, OverallShipped},
		{"pending dominates shipped", []ItemStatus{ItemPending, ItemShipped}, OverallShipped, OverallProcessing},
		{"processing dominates delivered", []ItemStatus{ItemProcessing, ItemDelivered}, OverallPendingPayment, OverallProcessing},
		{"all cancelled", []ItemStatus{ItemCancelled, ItemCancelled}, OverallProcessing, OverallCancelled},
		{"all returned", []ItemStatus{ItemReturned, ItemReturned}, OverallDelivered, OverallRefunded},
		{"cancelled and returned mix retains current", []ItemStatus{ItemCancelled, ItemReturned}, OverallProcessing, OverallProcessing},
		{"cancelled and shipped mix retains current", []ItemStatus{ItemCancelled, ItemShipped}, OverallProcessing, OverallProcessing},
		{"single pending", []ItemStatus{ItemPending}, OverallPendingPayment, OverallProcessing},
		{"no items retains current", nil, OverallPendingPayment, OverallPendingPayment},
	}

	for _, tt := range tests {
		items := make([]ItemState, 0, len(tt.items))
		for i, s := range tt.items {
			items = append(items, ItemState{ItemID: string(rune('a' + i)), BrandID: "brand-a", Status: s})
		}
		if got := DeriveOverallStatus(items, tt.current); got != tt.want {
			t.Fatalf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}

func TestApplyItemStatusUpdateReportsOverallChange(t *testing.T) {
	items := twoBrandOrder(ItemShipped, ItemDelivered)

	res, err := ApplyItemStatusUpdate("item-a", "brand-a", ItemDelivered, items, OverallShipped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OverallStatusChanged || res.NewOverallStatus != OverallDelivered {
		t.Fatalf("expected overall change to delivered, got %+v", res)
	}

	// same derived value as stored: no overall change
	res, err = ApplyItemStatusUpdate("item-a", "brand-a", ItemProcessing, twoBrandOrder(ItemPending, ItemPending), OverallProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OverallStatusChanged {
		t.Fatalf("expected no overall change, got %+v", res)
	}
}

func TestApplyItemStatusUpdateIdempotentSecondCall(t *testing.T) {
	items := twoBrandOrder(ItemPending, ItemPending)

	first, err := ApplyItemStatusUpdate("item-a", "brand-a", ItemShipped, items, OverallProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.NotificationRequired {
		t.Fatal("first call must require a notification")
	}

	// second call starts from the already-updated snapshot
	items[0].Status = first.NewItemStatus
	second, err := ApplyItemStatusUpdate("item-a", "brand-a", ItemShipped, items, OverallProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.NotificationRequired {
		t.Fatal("second identical call must not require a notification")
	}
}
