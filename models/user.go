package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"password" json:"-"`
	Phone             string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role              string             `bson:"role" json:"role"`
	PurchasedProducts []string           `bson:"purchased_products" json:"purchasedProducts"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
