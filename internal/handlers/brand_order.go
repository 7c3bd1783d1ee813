package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brandpanel/internal/fulfillment"
	"brandpanel/internal/models"
	"brandpanel/internal/notify"
)

type itemStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// brandOrderView is the order as one brand is allowed to see it: only its
// own line items, with the brand's share of the total.
type brandOrderView struct {
	ID            primitive.ObjectID        `json:"id"`
	OverallStatus fulfillment.OverallStatus `json:"overallStatus"`
	Customer      models.OrderCustomer      `json:"customer"`
	PaymentMethod string                    `json:"paymentMethod"`
	Items         []models.OrderItem        `json:"items"`
	BrandTotal    float64                   `json:"brandTotal"`
	CreatedAt     time.Time                 `json:"createdAt"`
}

func maskOrderForBrand(order models.Order, brandID primitive.ObjectID) brandOrderView {
	view := brandOrderView{
		ID:            order.ID,
		OverallStatus: order.OverallStatus,
		Customer:      order.Customer,
		PaymentMethod: order.PaymentMethod,
		Items:         make([]models.OrderItem, 0, len(order.Items)),
		CreatedAt:     order.CreatedAt,
	}
	for _, item := range order.Items {
		if item.BrandID != brandID {
			continue
		}
		view.Items = append(view.Items, item)
		view.BrandTotal += item.Price * float64(item.Quantity)
	}
	return view
}

/* =========================
   GET BRAND ORDERS
========================= */

func GetBrandOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /brand/api/orders"
		defer handlePanic(c, route)

		actor, ok := requireActor(c)
		if !ok {
			return
		}

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		filter := bson.M{"items.brandId": actor.BrandID}
		if status := c.Query("overallStatus"); status != "" {
			filter["overallStatus"] = status
		}

		opts := options.Find().
			SetSkip((page - 1) * limit).
			SetLimit(limit).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("orders").Find(ctx, filter, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		views := make([]brandOrderView, 0, len(orders))
		for _, order := range orders {
			views = append(views, maskOrderForBrand(order, actor.BrandID))
		}

		c.JSON(http.StatusOK, gin.H{"data": views})
	}
}

/* =========================
   UPDATE ITEM STATUS
========================= */

// UpdateOrderItemStatus changes the fulfillment status of one owned line
// item. The order snapshot, the aggregator run and both status writes happen
// inside one session transaction so concurrent updates to sibling items
// always recompute the overall status from a consistent item set. The
// customer notification is enqueued only after the transaction commits.
func UpdateOrderItemStatus(db *mongo.Database, notifier notify.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /brand/api/orders/:id/items/:itemId/status"
		defer handlePanic(c, route)

		actor, ok := requireActor(c)
		if !ok {
			return
		}

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		itemID := c.Param("itemId")

		var req itemStatusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		session, err := db.Client().StartSession()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer session.EndSession(ctx)

		var result fulfillment.UpdateResult
		var productLabel string
		_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
			var order models.Order
			err := db.Collection("orders").FindOne(sessCtx, bson.M{"_id": orderID}).Decode(&order)
			if err == mongo.ErrNoDocuments {
				return nil, fulfillment.ItemNotFoundError{ItemID: itemID}
			}
			if err != nil {
				return nil, err
			}

			result, err = fulfillment.ApplyItemStatusUpdate(
				itemID,
				actor.BrandID.Hex(),
				fulfillment.ItemStatus(req.Status),
				order.ItemStates(),
				order.OverallStatus,
			)
			if err != nil {
				return nil, err
			}

			for _, item := range order.Items {
				if item.ItemID == itemID {
					productLabel = item.Name
					break
				}
			}

			// the brandId condition makes a cross-brand write match zero
			// array elements even if the ownership check above is bypassed
			itemFilter := bson.M{
				"_id": orderID,
				"items": bson.M{"$elemMatch": bson.M{
					"itemId":  itemID,
					"brandId": actor.BrandID,
				}},
			}
			res, err := db.Collection("orders").UpdateOne(
				sessCtx,
				itemFilter,
				bson.M{"$set": bson.M{"items.$.status": result.NewItemStatus}},
			)
			if err != nil {
				return nil, err
			}
			if res.MatchedCount == 0 {
				return nil, fulfillment.ItemNotFoundError{ItemID: itemID}
			}

			if result.OverallStatusChanged {
				if _, err := db.Collection("orders").UpdateByID(
					sessCtx,
					orderID,
					bson.M{"$set": bson.M{"overallStatus": result.NewOverallStatus}},
				); err != nil {
					return nil, err
				}
			}

			return nil, nil
		})
		if err != nil {
			var invalid fulfillment.InvalidStatusError
			if errors.As(err, &invalid) {
				c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
				return
			}
			var notFound fulfillment.ItemNotFoundError
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order item not found"})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if result.NotificationRequired {
			enqueueItemNotification(notifier, orderID, itemID, productLabel, result)
		}

		log.Printf("[ORDER] [INFO] item %s of order %s set to %s by brand %s",
			itemID, orderID.Hex(), result.NewItemStatus, actor.BrandID.Hex())

		c.JSON(http.StatusOK, gin.H{
			"itemId":               itemID,
			"oldStatus":            result.OldItemStatus,
			"newStatus":            result.NewItemStatus,
			"overallStatusChanged": result.OverallStatusChanged,
			"overallStatus":        result.NewOverallStatus,
		})
	}
}

// enqueueItemNotification hands the transition to the notifier. Failures are
// logged only; the status change is already committed and stands.
func enqueueItemNotification(notifier notify.Sender, orderID primitive.ObjectID, itemID, productLabel string, result fulfillment.UpdateResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := notifier.NotifyCustomer(ctx, notify.CustomerNotification{
		OrderID:      orderID.Hex(),
		ItemID:       itemID,
		ProductLabel: productLabel,
		OldStatus:    string(result.OldItemStatus),
		NewStatus:    string(result.NewItemStatus),
	})
	if err != nil {
		log.Println("[NOTIFY] [ERROR] enqueue failed:", err)
	}
}
