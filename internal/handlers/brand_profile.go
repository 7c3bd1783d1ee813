package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brandpanel/internal/models"
)

type BrandProfileUpdateRequest struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contactEmail"`
	Phone        *string `json:"phone"`
	Description  *string `json:"description"`
}

func GetBrandProfile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var brand models.Brand
		if err := db.Collection("brands").FindOne(ctx, bson.M{"_id": actor.BrandID}).Decode(&brand); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "brand not found"})
			return
		}

		c.JSON(http.StatusOK, brand)
	}
}

func UpdateBrandProfile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}

		var req BrandProfileUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		update := bson.M{}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
				return
			}
			update["name"] = name
		}

		if req.ContactEmail != nil {
			email := strings.ToLower(strings.TrimSpace(*req.ContactEmail))
			if email == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "contactEmail cannot be empty"})
				return
			}
			update["contactEmail"] = email
		}

		if req.Phone != nil {
			update["phone"] = strings.TrimSpace(*req.Phone)
		}

		if req.Description != nil {
			update["description"] = strings.TrimSpace(*req.Description)
		}

		if len(update) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}
		update["updatedAt"] = time.Now()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var updated models.Brand
		err := db.Collection("brands").
			FindOneAndUpdate(
				ctx,
				bson.M{"_id": actor.BrandID},
				bson.M{"$set": update},
				options.FindOneAndUpdate().SetReturnDocument(options.After),
			).
			Decode(&updated)

		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "brand not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}
