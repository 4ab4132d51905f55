package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem denormalizes title, price and image at add-time, matching what the
// storefront shows in the cart regardless of later catalog edits.
type CartItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	ProductID     primitive.ObjectID `bson:"productId" json:"productId"`
	Title         string             `bson:"title" json:"title"`
	Price         float64            `bson:"price" json:"price"`
	Image         string             `bson:"image" json:"image"`
	CategoryLabel string             `bson:"category_label" json:"categoryLabel"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
