package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cartlink/models"
)

// NewUser builds a fresh customer account. Registration always produces a
// customer: the role is not caller-controlled, admin accounts are provisioned
// directly in the database.
func NewUser(name, email, hashedPassword, phone string) models.User {
	return models.User{
		ID:                primitive.NewObjectID(),
		Name:              name,
		Email:             email,
		Password:          hashedPassword,
		Phone:             phone,
		Role:              "customer",
		PurchasedProducts: []string{},
		CreatedAt:         time.Now(),
	}
}
