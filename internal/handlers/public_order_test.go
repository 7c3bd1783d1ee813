package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandpanel/internal/fulfillment"
)

func validCreateOrderRequest() createOrderRequest {
	return createOrderRequest{
		Items: []createOrderItemRequest{
			{ProductID: primitive.NewObjectID().Hex(), Quantity: 2},
		},
		Customer:      createOrderCustomerRequest{Title: "Home", Detail: "Some street 1"},
		PaymentMethod: createOrderPaymentMethodRequest{ID: "card"},
	}
}

func TestBuildOrderFromRequestStartsAtPendingPayment(t *testing.T) {
	order, err := buildOrderFromRequest(validCreateOrderRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OverallStatus != fulfillment.OverallPendingPayment {
		t.Fatalf("expected pending_payment, got %s", order.OverallStatus)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", order.Items)
	}
}

func TestBuildOrderFromRequestRejectsBadInput(t *testing.T) {
	req := validCreateOrderRequest()
	req.Items = nil
	if _, err := buildOrderFromRequest(req); err == nil {
		t.Fatal("expected error for empty items")
	}

	req = validCreateOrderRequest()
	req.PaymentMethod.ID = "cheque"
	if _, err := buildOrderFromRequest(req); err == nil {
		t.Fatal("expected error for unknown payment method")
	}

	req = validCreateOrderRequest()
	req.Items[0].Quantity = 0
	if _, err := buildOrderFromRequest(req); err == nil {
		t.Fatal("expected error for zero quantity")
	}

	req = validCreateOrderRequest()
	req.Items[0].ProductID = "not-an-id"
	if _, err := buildOrderFromRequest(req); err == nil {
		t.Fatal("expected error for invalid productId")
	}
}

func TestParsePaginationParams(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil || page != 1 || limit != 20 {
		t.Fatalf("expected defaults 1/20, got %d/%d err=%v", page, limit, err)
	}

	page, limit, err = parsePaginationParams("3", "50")
	if err != nil || page != 3 || limit != 50 {
		t.Fatalf("expected 3/50, got %d/%d err=%v", page, limit, err)
	}

	for _, bad := range [][2]string{{"0", "10"}, {"x", "10"}, {"1", "0"}, {"1", "101"}} {
		if _, _, err := parsePaginationParams(bad[0], bad[1]); err == nil {
			t.Fatalf("expected error for page=%s limit=%s", bad[0], bad[1])
		}
	}
}
