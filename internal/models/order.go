package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandpanel/internal/fulfillment"
)

// OrderItem is a single line item within an order. Items of one order can
// belong to different brands; only the owning brand may change the status.
type OrderItem struct {
	ItemID    string                 `bson:"itemId" json:"itemId"`
	ProductID primitive.ObjectID     `bson:"productId" json:"productId"`
	BrandID   primitive.ObjectID     `bson:"brandId" json:"brandId"`
	Name      string                 `bson:"name" json:"name"`
	Price     float64                `bson:"price" json:"price"`
	Quantity  int                    `bson:"quantity" json:"quantity"`
	Status    fulfillment.ItemStatus `bson:"status" json:"status"`
}

// OrderCustomer captures lightweight customer contact details for an order.
type OrderCustomer struct {
	Title  string `bson:"title" json:"title"`
	Detail string `bson:"detail" json:"detail"`
	Note   string `bson:"note,omitempty" json:"note,omitempty"`
}

// Order defines the persisted order document. OverallStatus is a cached
// projection of the item statuses and is only written through the
// fulfillment aggregator, never directly.
type Order struct {
	ID            primitive.ObjectID        `bson:"_id,omitempty" json:"id"`
	UserID        *primitive.ObjectID       `bson:"userId" json:"userId"`
	Items         []OrderItem               `bson:"items" json:"items"`
	TotalPrice    float64                   `bson:"totalPrice" json:"totalPrice"`
	Customer      OrderCustomer             `bson:"customer" json:"customer"`
	PaymentMethod string                    `bson:"paymentMethod" json:"paymentMethod"`
	OverallStatus fulfillment.OverallStatus `bson:"overallStatus" json:"overallStatus"`
	CreatedAt     time.Time                 `bson:"createdAt" json:"createdAt"`
}

// ItemStates converts the order's items into the aggregator's snapshot form.
func (o Order) ItemStates() []fulfillment.ItemState {
	states := make([]fulfillment.ItemState, 0, len(o.Items))
	for _, item := range o.Items {
		states = append(states, fulfillment.ItemState{
			ItemID:  item.ItemID,
			BrandID: item.BrandID.Hex(),
			Status:  item.Status,
		})
	}
	return states
}
