package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusProcessed OrderStatus = "processed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order IDs come from the checkout flow (ORD-<millis>-<random suffix>) and
// double as the gateway's transaction_details.order_id, so they are stored
// as-is rather than as ObjectIDs.
type Order struct {
	ID            string       `bson:"_id" json:"id"`
	CustomerInfo  CustomerInfo `bson:"customer_info" json:"customer_info"`
	Items         []OrderItem  `bson:"items" json:"items"`
	Total         float64      `bson:"total" json:"total"`
	PaymentMethod string       `bson:"payment_method" json:"payment_method"`
	Status        OrderStatus  `bson:"status" json:"status"`
	TransactionID string       `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	Notes         string       `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `bson:"updated_at" json:"updated_at"`
}

// OrderItem freezes the product price at order-creation time. Later catalog
// edits never change historical orders.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Title     string             `bson:"title" json:"title"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}

type CustomerInfo struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Whatsapp string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPaid, OrderStatusProcessed, OrderStatusCancelled},
	OrderStatusPaid:      {OrderStatusProcessed, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusProcessed: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
// Completed and cancelled are terminal.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
