package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"cartlink/database"
	"cartlink/models"
	"cartlink/payment"
	"cartlink/utils"
)

var (
	ErrMissingContact = errors.New("name, email and phone are required")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrEmptyOrder     = errors.New("order has no items")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,19}$`)
)

// ValidateCustomer requires non-empty name, email and phone. The stricter
// format checks only run on the single-product checkout path, matching the
// storefront's behavior.
func ValidateCustomer(c models.CustomerInfo, strict bool) error {
	if strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Email) == "" ||
		strings.TrimSpace(c.Phone) == "" {
		return ErrMissingContact
	}
	if strict {
		if !emailPattern.MatchString(c.Email) {
			return ErrInvalidEmail
		}
		if !phonePattern.MatchString(c.Phone) {
			return ErrInvalidPhone
		}
	}
	return nil
}

// ComputeTotal sums line price times quantity.
func ComputeTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ComputeDiscount is the display delta between the original and current price
// for a single-product checkout. Never negative.
func ComputeDiscount(originalPrice, price float64, quantity int) float64 {
	d := (originalPrice - price) * float64(quantity)
	if d < 0 {
		return 0
	}
	return d
}

// AssembleOrder builds a pending order with a fresh client-style identifier.
// Prices inside items are already frozen by the caller.
func AssembleOrder(items []models.OrderItem, customer models.CustomerInfo, notes string) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if customer.Whatsapp == "" {
		customer.Whatsapp = customer.Phone
	}
	now := time.Now()
	return &models.Order{
		ID:            utils.GenerateOrderID(),
		CustomerInfo:  customer,
		Items:         items,
		Total:         ComputeTotal(items),
		PaymentMethod: "midtrans",
		Status:        models.OrderStatusPending,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

var (
	journalMu   sync.Mutex
	journalPath = "orders.fallback.jsonl"
)

func SetJournalPath(path string) {
	journalMu.Lock()
	defer journalMu.Unlock()
	if path != "" {
		journalPath = path
	}
}

// SaveOrder upserts the order into the store. When the write fails the order
// is appended to a local journal so the attempt is never lost, and the error
// is still returned; callers must surface the failure instead of letting a
// paid order disappear from the back office.
func SaveOrder(ctx context.Context, order *models.Order) error {
	order.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := database.OrderCollection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order, opts)
	if err == nil {
		return nil
	}

	zap.L().Error("Failed to persist order, journaling locally",
		zap.String("order_id", order.ID),
		zap.Error(err))

	if jerr := appendToJournal(order); jerr != nil {
		zap.L().Error("Order journal write failed",
			zap.String("order_id", order.ID),
			zap.Error(jerr))
	}
	return err
}

func appendToJournal(order *models.Order) error {
	journalMu.Lock()
	defer journalMu.Unlock()

	f, err := os.OpenFile(journalPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(order)
}

// ApplyPaymentResult advances the order according to the gateway outcome and
// persists it. Notifications are delivered at-least-once and out of order, so
// the status only moves along the transition table: a replay of the current
// status is a no-op, and a stale notification for an order that already moved
// on is dropped. A paid order also grants the customer access to the
// purchased products.
func ApplyPaymentResult(ctx context.Context, order *models.Order, result payment.Result) error {
	var next models.OrderStatus
	switch result.Kind {
	case payment.KindSuccess:
		next = models.OrderStatusPaid
	case payment.KindPending:
		next = models.OrderStatusPending
	default:
		next = models.OrderStatusCancelled
	}

	if next == order.Status {
		if result.TransactionID == "" || result.TransactionID == order.TransactionID {
			return nil
		}
		order.TransactionID = result.TransactionID
		return SaveOrder(ctx, order)
	}

	if !models.CanTransition(order.Status, next) {
		zap.L().Warn("Dropping stale payment notification",
			zap.String("order_id", order.ID),
			zap.String("status", string(order.Status)),
			zap.String("incoming", string(next)),
			zap.String("raw_status", result.RawStatus))
		return nil
	}

	order.Status = next
	order.TransactionID = result.TransactionID

	if err := SaveOrder(ctx, order); err != nil {
		return err
	}

	if order.Status == models.OrderStatusPaid {
		grantPurchases(ctx, order)
	}
	return nil
}

// grantPurchases adds the order's product ids to the purchased-products list
// of the registered user with the same email, if any. Guest orders are a
// no-op. Best effort: access can be re-granted by the admin later.
func grantPurchases(ctx context.Context, order *models.Order) {
	ids := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID.Hex())
	}
	if len(ids) == 0 {
		return
	}

	_, err := database.UserCollection.UpdateOne(ctx,
		bson.M{"email": order.CustomerInfo.Email},
		bson.M{"$addToSet": bson.M{"purchased_products": bson.M{"$each": ids}}},
	)
	if err != nil {
		zap.L().Warn("Failed to grant purchased products",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}
}
