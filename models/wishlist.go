package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wishlist is one document per user keyed by the user id.
type Wishlist struct {
	UserID     primitive.ObjectID `bson:"_id" json:"userId"`
	ProductIDs []string           `bson:"productIds" json:"productIds"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
