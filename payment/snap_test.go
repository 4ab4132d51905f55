package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"cartlink/models"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		serverKey: "SB-Mid-server-test",
		baseURL:   serverURL,
		finishURL: "https://cartlink.id/checkout-success",
		http:      &http.Client{},
		logger:    zap.NewNop(),
	}
}

func TestCreateTransactionReturnsTokenAndFetchesOnce(t *testing.T) {
	var calls int64
	var captured snapPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, snapTokenPath, r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "expected basic auth")
		assert.Equal(t, "SB-Mid-server-test", user)
		assert.Equal(t, "", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]string{
			"token":        "snap-token-abc",
			"redirect_url": "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token-abc",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	productID := primitive.NewObjectID()
	resp, err := client.CreateTransaction(context.Background(), &TokenRequest{
		OrderID:    "ORD-1700000000000-ABCDEF123",
		TotalPrice: 250000,
		Customer:   models.CustomerInfo{Name: "Budi", Email: "budi@example.com", Phone: "081234567890"},
		Items: []models.OrderItem{
			{ProductID: productID, Title: "Ebook Premium", Price: 125000, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "snap-token-abc", resp.Token)
	assert.Contains(t, resp.RedirectURL, "snap-token-abc")
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls), "exactly one token fetch per submit")

	assert.Equal(t, "ORD-1700000000000-ABCDEF123", captured.TransactionDetails.OrderID)
	assert.EqualValues(t, 250000, captured.TransactionDetails.GrossAmount)
	require.Len(t, captured.ItemDetails, 1)
	assert.Equal(t, productID.Hex(), captured.ItemDetails[0].ID)
	assert.EqualValues(t, 125000, captured.ItemDetails[0].Price)
	assert.Equal(t, 2, captured.ItemDetails[0].Quantity)
	assert.Equal(t, "budi@example.com", captured.CustomerDetails.Email)
	assert.Contains(t, captured.EnabledPayments, "qris")
	assert.Contains(t, captured.EnabledPayments, "gopay")
	assert.Equal(t, "https://cartlink.id/checkout-success?order_id=ORD-1700000000000-ABCDEF123", captured.Callbacks.Finish)
}

func TestCreateTransactionGatewayError(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "upstream unavailable"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.CreateTransaction(context.Background(), &TokenRequest{
		OrderID:    "ORD-1700000000000-XYZXYZXYZ",
		TotalPrice: 100000,
		Customer:   models.CustomerInfo{Name: "Siti", Email: "siti@example.com", Phone: "0811111111"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls), "no automatic retry on failure")

	// The client holds no state: a resubmit works once the gateway recovers.
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "snap-token-retry"})
	}))
	defer srv2.Close()
	client.baseURL = srv2.URL

	resp, err := client.CreateTransaction(context.Background(), &TokenRequest{
		OrderID:    "ORD-1700000000001-XYZXYZXYZ",
		TotalPrice: 100000,
		Customer:   models.CustomerInfo{Name: "Siti", Email: "siti@example.com", Phone: "0811111111"},
	})
	require.NoError(t, err)
	assert.Equal(t, "snap-token-retry", resp.Token)
}

func TestBuildPayloadSingleProduct(t *testing.T) {
	client := newTestClient("http://unused")

	p := client.buildPayload(&TokenRequest{
		OrderID:      "ORD-1-AAAAAAAAA",
		TotalPrice:   358000,
		Customer:     models.CustomerInfo{Name: "Andi", Email: "andi@example.com", Phone: "0812"},
		ProductID:    "prod-1",
		ProductTitle: strings.Repeat("Kelas Digital Marketing Lengkap ", 3),
		PricePerUnit: 179000,
		Quantity:     2,
	})

	require.Len(t, p.ItemDetails, 1)
	assert.Equal(t, "prod-1", p.ItemDetails[0].ID)
	assert.EqualValues(t, 179000, p.ItemDetails[0].Price)
	assert.Equal(t, 2, p.ItemDetails[0].Quantity)
	assert.Len(t, p.ItemDetails[0].Name, 50, "item name truncated to 50 chars")
}

func TestBuildPayloadTruncatesLongTitleByRunes(t *testing.T) {
	client := newTestClient("http://unused")

	title := strings.Repeat("Paket Désain Prémium — Template é ", 3)
	p := client.buildPayload(&TokenRequest{
		OrderID:      "ORD-1-CCCCCCCCC",
		TotalPrice:   179000,
		Customer:     models.CustomerInfo{Name: "Andi", Email: "andi@example.com", Phone: "0812"},
		ProductID:    "prod-2",
		ProductTitle: title,
		PricePerUnit: 179000,
		Quantity:     1,
	})

	require.Len(t, p.ItemDetails, 1)
	name := p.ItemDetails[0].Name
	assert.Equal(t, 50, len([]rune(name)), "trimmed to 50 runes, not bytes")
	assert.Equal(t, string([]rune(title)[:50]), name, "no mangled trailing character")
}

func TestBuildPayloadGenericFallback(t *testing.T) {
	client := newTestClient("http://unused")

	p := client.buildPayload(&TokenRequest{
		OrderID:    "ORD-2-BBBBBBBBB",
		TotalPrice: 49999.6,
		Customer:   models.CustomerInfo{Name: "Rina", Email: "rina@example.com", Phone: "0813"},
	})

	assert.EqualValues(t, 50000, p.TransactionDetails.GrossAmount, "amounts rounded to whole rupiah")
	require.Len(t, p.ItemDetails, 1)
	assert.Equal(t, "ORD-2-BBBBBBBBB", p.ItemDetails[0].ID)
	assert.Equal(t, "Pembelian Produk Digital", p.ItemDetails[0].Name)
	assert.Equal(t, 1, p.ItemDetails[0].Quantity)
}
