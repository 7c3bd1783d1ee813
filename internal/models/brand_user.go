package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandUser is a panel account bound to exactly one brand.
type BrandUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BrandID      primitive.ObjectID `bson:"brandId" json:"brandId"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Name         string             `bson:"name" json:"name"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
