package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brandpanel/internal/fulfillment"
	"brandpanel/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type createOrderCustomerRequest struct {
	Title  string `json:"title" binding:"required"`
	Detail string `json:"detail" binding:"required"`
	Note   string `json:"note"`
}

type createOrderPaymentMethodRequest struct {
	ID    string `json:"id" binding:"required"`
	Label string `json:"label"`
}

type createOrderRequest struct {
	Items         []createOrderItemRequest        `json:"items" binding:"required"`
	Customer      createOrderCustomerRequest      `json:"customer" binding:"required"`
	PaymentMethod createOrderPaymentMethodRequest `json:"paymentMethod" binding:"required"`
}

/* =========================
   CREATE ORDER
========================= */

func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := buildOrderFromRequest(req)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		if value, ok := c.Get("userId"); ok {
			if userID, ok := value.(primitive.ObjectID); ok {
				order.UserID = &userID
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		session, err := db.Client().StartSession()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer session.EndSession(ctx)

		var orderID primitive.ObjectID
		_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
			resolvedItems := make([]models.OrderItem, 0, len(order.Items))
			total := 0.0

			for _, item := range order.Items {
				var product models.Product
				err := db.Collection("products").FindOne(
					sessCtx,
					bson.M{
						"_id":       item.ProductID,
						"isActive":  true,
						"isDeleted": bson.M{"$ne": true},
					},
				).Decode(&product)
				if err == mongo.ErrNoDocuments {
					return nil, productNotFoundError{ProductID: item.ProductID}
				}
				if err != nil {
					return nil, err
				}

				if product.Stock < item.Quantity {
					return nil, outOfStockError{
						ProductID: item.ProductID,
						Available: product.Stock,
						Requested: item.Quantity,
					}
				}

				resolvedItems = append(resolvedItems, models.OrderItem{
					ItemID:    uuid.NewString(),
					ProductID: item.ProductID,
					BrandID:   product.BrandID,
					Name:      product.Name,
					Price:     product.Price,
					Quantity:  item.Quantity,
					Status:    fulfillment.ItemPending,
				})
				total += product.Price * float64(item.Quantity)
			}

			order.Items = resolvedItems
			order.TotalPrice = total

			res, err := db.Collection("orders").InsertOne(sessCtx, order)
			if err != nil {
				return nil, err
			}
			if id, ok := res.InsertedID.(primitive.ObjectID); ok {
				orderID = id
			}
			return nil, nil
		})
		if err != nil {
			var stockErr outOfStockError
			if errors.As(err, &stockErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":     "product out of stock",
					"productId": stockErr.ProductID.Hex(),
					"available": stockErr.Available,
					"requested": stockErr.Requested,
				})
				return
			}
			var notFoundErr productNotFoundError
			if errors.As(err, &notFoundErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":     "product not found",
					"productId": notFoundErr.ProductID.Hex(),
				})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if order.UserID != nil {
			log.Println("[ORDER] [INFO] order created for user:", order.UserID.Hex())
		} else {
			log.Println("[ORDER] [INFO] guest order created")
		}

		c.JSON(http.StatusCreated, gin.H{
			"orderId": orderID.Hex(),
			"message": "order created",
		})
	}
}

/* =========================
   GET MY ORDERS
========================= */

func GetMyOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get("userId")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		userID, ok := value.(primitive.ObjectID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Collection("orders").Find(ctx, bson.M{"userId": userID}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

/* =========================
   BUILD ORDER
========================= */

func buildOrderFromRequest(req createOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, errors.New("at least one item is required")
	}

	if req.PaymentMethod.ID != "cash" && req.PaymentMethod.ID != "card" {
		return models.Order{}, errors.New("invalid payment method")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(item.ProductID))
		if err != nil {
			return models.Order{}, errors.New("invalid productId")
		}

		if item.Quantity <= 0 {
			return models.Order{}, errors.New("quantity must be greater than zero")
		}

		items = append(items, models.OrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	order := models.Order{
		Items:         items,
		Customer:      models.OrderCustomer(req.Customer),
		PaymentMethod: req.PaymentMethod.ID,
		OverallStatus: fulfillment.OverallPendingPayment,
		CreatedAt:     time.Now(),
	}

	return order, nil
}

type outOfStockError struct {
	ProductID primitive.ObjectID
	Available int
	Requested int
}

func (e outOfStockError) Error() string {
	return "product out of stock"
}

type productNotFoundError struct {
	ProductID primitive.ObjectID
}

func (e productNotFoundError) Error() string {
	return "product not found"
}
