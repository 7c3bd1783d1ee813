package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandpanel/internal/fulfillment"
	"brandpanel/internal/models"
)

func TestMaskOrderForBrandHidesForeignItems(t *testing.T) {
	brandA := primitive.NewObjectID()
	brandB := primitive.NewObjectID()

	order := models.Order{
		ID:            primitive.NewObjectID(),
		OverallStatus: fulfillment.OverallProcessing,
		Items: []models.OrderItem{
			{ItemID: "i-1", BrandID: brandA, Name: "Tote", Price: 40, Quantity: 2, Status: fulfillment.ItemPending},
			{ItemID: "i-2", BrandID: brandB, Name: "Mug", Price: 10, Quantity: 1, Status: fulfillment.ItemShipped},
			{ItemID: "i-3", BrandID: brandA, Name: "Cap", Price: 15, Quantity: 1, Status: fulfillment.ItemProcessing},
		},
	}

	view := maskOrderForBrand(order, brandA)

	if len(view.Items) != 2 {
		t.Fatalf("expected 2 items for brand A, got %d", len(view.Items))
	}
	for _, item := range view.Items {
		if item.BrandID != brandA {
			t.Fatalf("foreign item leaked into view: %+v", item)
		}
	}
	if view.BrandTotal != 40*2+15 {
		t.Fatalf("expected brand total 95, got %v", view.BrandTotal)
	}
	if view.OverallStatus != fulfillment.OverallProcessing {
		t.Fatalf("expected overall status preserved, got %s", view.OverallStatus)
	}
}

func TestMaskOrderForBrandWithNoOwnedItems(t *testing.T) {
	brandA := primitive.NewObjectID()
	brandB := primitive.NewObjectID()

	order := models.Order{
		Items: []models.OrderItem{
			{ItemID: "i-1", BrandID: brandB, Price: 10, Quantity: 1},
		},
	}

	view := maskOrderForBrand(order, brandA)
	if len(view.Items) != 0 || view.BrandTotal != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}
