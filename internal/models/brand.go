package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand is a vendor on the marketplace. Products and order items reference
// the owning brand; its admins may only touch rows carrying their brandId.
type Brand struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	ContactEmail string             `bson:"contactEmail" json:"contactEmail"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	LogoPath     string             `bson:"logoPath,omitempty" json:"logoPath,omitempty"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
