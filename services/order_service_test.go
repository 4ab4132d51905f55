package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cartlink/models"
	"cartlink/payment"
)

func TestComputeTotal(t *testing.T) {
	items := []models.OrderItem{
		{Price: 100, Quantity: 2},
		{Price: 50, Quantity: 1},
	}
	assert.EqualValues(t, 250, ComputeTotal(items))

	assert.EqualValues(t, 0, ComputeTotal(nil))
}

func TestComputeDiscount(t *testing.T) {
	assert.EqualValues(t, 100000, ComputeDiscount(229000, 179000, 2))
	assert.EqualValues(t, 0, ComputeDiscount(179000, 179000, 3))
	// A product priced above its original price shows no negative discount.
	assert.EqualValues(t, 0, ComputeDiscount(100000, 150000, 1))
}

func TestAssembleOrder(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: primitive.NewObjectID(), Title: "Ebook Premium", Price: 100, Quantity: 2},
		{ProductID: primitive.NewObjectID(), Title: "Template Desain", Price: 50, Quantity: 1},
	}
	customer := models.CustomerInfo{Name: "Budi", Email: "budi@example.com", Phone: "081234567890"}

	order, err := AssembleOrder(items, customer, "kirim cepat")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.EqualValues(t, 250, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "midtrans", order.PaymentMethod)
	assert.Equal(t, "kirim cepat", order.Notes)
	assert.Equal(t, "081234567890", order.CustomerInfo.Whatsapp, "whatsapp defaults to phone")
	assert.Len(t, order.Items, 2)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestAssembleOrderKeepsExplicitWhatsapp(t *testing.T) {
	items := []models.OrderItem{{Price: 10, Quantity: 1}}
	customer := models.CustomerInfo{
		Name: "Siti", Email: "siti@example.com",
		Phone: "0811", Whatsapp: "628111",
	}

	order, err := AssembleOrder(items, customer, "")
	require.NoError(t, err)
	assert.Equal(t, "628111", order.CustomerInfo.Whatsapp)
}

func TestAssembleOrderRejectsEmpty(t *testing.T) {
	customer := models.CustomerInfo{Name: "Budi", Email: "b@example.com", Phone: "0812"}
	_, err := AssembleOrder(nil, customer, "")
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestAssembleOrderIDsDiffer(t *testing.T) {
	items := []models.OrderItem{{Price: 10, Quantity: 1}}
	customer := models.CustomerInfo{Name: "Budi", Email: "b@example.com", Phone: "0812"}

	a, err := AssembleOrder(items, customer, "")
	require.NoError(t, err)
	b, err := AssembleOrder(items, customer, "")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestApplyPaymentResultDropsStaleNotification(t *testing.T) {
	// A settlement that arrives after the customer cancelled must not
	// resurrect the order.
	order := &models.Order{ID: "ORD-1-A", Status: models.OrderStatusCancelled}
	result := payment.Result{
		Kind: payment.KindSuccess, OrderID: order.ID,
		TransactionID: "txn-1", RawStatus: "settlement",
	}

	require.NoError(t, ApplyPaymentResult(context.Background(), order, result))
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
	assert.Empty(t, order.TransactionID)
}

func TestApplyPaymentResultReplayIsNoOp(t *testing.T) {
	order := &models.Order{
		ID: "ORD-1-B", Status: models.OrderStatusPending, TransactionID: "txn-1",
	}
	result := payment.Result{
		Kind: payment.KindPending, OrderID: order.ID,
		TransactionID: "txn-1", RawStatus: "pending",
	}

	require.NoError(t, ApplyPaymentResult(context.Background(), order, result))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "txn-1", order.TransactionID)
}

func TestApplyPaymentResultCompletedIsFinal(t *testing.T) {
	order := &models.Order{ID: "ORD-1-C", Status: models.OrderStatusCompleted}
	result := payment.Result{
		Kind: payment.KindError, OrderID: order.ID, RawStatus: "expire",
	}

	require.NoError(t, ApplyPaymentResult(context.Background(), order, result))
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
}

func TestValidateCustomerRequiredFields(t *testing.T) {
	cases := []models.CustomerInfo{
		{Name: "", Email: "a@b.co", Phone: "0812"},
		{Name: "Budi", Email: "", Phone: "0812"},
		{Name: "Budi", Email: "a@b.co", Phone: ""},
		{Name: "   ", Email: "a@b.co", Phone: "0812"},
	}
	for _, c := range cases {
		assert.ErrorIs(t, ValidateCustomer(c, false), ErrMissingContact, "customer %+v", c)
	}

	ok := models.CustomerInfo{Name: "Budi", Email: "a@b.co", Phone: "0812"}
	assert.NoError(t, ValidateCustomer(ok, false))
}

func TestValidateCustomerStrict(t *testing.T) {
	badEmail := models.CustomerInfo{Name: "Budi", Email: "not-an-email", Phone: "081234567890"}
	assert.ErrorIs(t, ValidateCustomer(badEmail, true), ErrInvalidEmail)

	badPhone := models.CustomerInfo{Name: "Budi", Email: "budi@example.com", Phone: "abc"}
	assert.ErrorIs(t, ValidateCustomer(badPhone, true), ErrInvalidPhone)

	ok := models.CustomerInfo{Name: "Budi", Email: "budi@example.com", Phone: "+62 812-3456-7890"}
	assert.NoError(t, ValidateCustomer(ok, true))

	// The lax path accepts what the strict path rejects.
	assert.NoError(t, ValidateCustomer(badEmail, false))
}
