package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title" binding:"required"`
	Category      string             `bson:"category" json:"category" binding:"required"`
	CategoryLabel string             `bson:"category_label" json:"categoryLabel"`
	Price         float64            `bson:"price" json:"price" binding:"required"`
	OriginalPrice float64            `bson:"original_price" json:"originalPrice"`
	Image         string             `bson:"image" json:"image"`
	Description   string             `bson:"description" json:"description"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       int                `bson:"reviews" json:"reviews"`
	Badge         string             `bson:"badge,omitempty" json:"badge,omitempty"`
	Featured      bool               `bson:"featured" json:"featured"`
	Slug          string             `bson:"slug" json:"slug"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
