package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"cartlink/models"
)

const (
	sandboxBaseURL    = "https://app.sandbox.midtrans.com"
	productionBaseURL = "https://app.midtrans.com"

	snapTokenPath = "/snap/v1/transactions"

	// Midtrans rejects item names longer than 50 characters.
	maxItemNameLen = 50
)

var enabledPayments = []string{
	"bca_va", "bni_va", "bri_va", "permata_va", "other_va",
	"gopay", "shopeepay",
	"qris",
}

// Client requests one-time Snap tokens from the Midtrans transactions API.
// The server key never leaves this process; handlers only ever see the token
// and redirect URL.
type Client struct {
	serverKey string
	baseURL   string
	finishURL string
	http      *http.Client
	logger    *zap.Logger
}

func NewClient(serverKey string, production bool, finishURL string, logger *zap.Logger) *Client {
	baseURL := sandboxBaseURL
	if production {
		baseURL = productionBaseURL
	}
	return &Client{
		serverKey: serverKey,
		baseURL:   baseURL,
		finishURL: finishURL,
		http:      &http.Client{Timeout: 10 * time.Second},
		logger:    logger,
	}
}

// TokenRequest carries one checkout submit. Either Items (cart checkout) or
// ProductID (single-product checkout) is set; with neither, a generic line
// item covering the full amount is sent.
type TokenRequest struct {
	OrderID    string              `json:"orderId"`
	TotalPrice float64             `json:"totalPrice"`
	Customer   models.CustomerInfo `json:"customer"`

	Items []models.OrderItem `json:"items,omitempty"`

	ProductID    string  `json:"productId,omitempty"`
	ProductTitle string  `json:"productTitle,omitempty"`
	PricePerUnit float64 `json:"pricePerUnit,omitempty"`
	Quantity     int     `json:"quantity,omitempty"`
}

type TokenResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type snapItem struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type snapPayload struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	ItemDetails     []snapItem `json:"item_details"`
	CustomerDetails struct {
		FirstName string `json:"first_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"customer_details"`
	EnabledPayments []string `json:"enabled_payments"`
	Callbacks       struct {
		Finish string `json:"finish"`
	} `json:"callbacks"`
}

// CreateTransaction exchanges an order for a Snap token. Exactly one gateway
// call per invocation; failures are returned to the caller and never retried
// here, the customer resubmits.
func (c *Client) CreateTransaction(ctx context.Context, req *TokenRequest) (*TokenResponse, error) {
	payload := c.buildPayload(req)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal snap payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+snapTokenPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.serverKey, "")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Error("Snap token request failed",
			zap.String("order_id", req.OrderID),
			zap.Error(err))
		return nil, fmt.Errorf("snap token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Error("Snap token request rejected",
			zap.String("order_id", req.OrderID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail))
		return nil, fmt.Errorf("snap token request: status %d", resp.StatusCode)
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decode snap response: %w", err)
	}

	c.logger.Info("Snap token created",
		zap.String("order_id", req.OrderID),
		zap.Int64("gross_amount", payload.TransactionDetails.GrossAmount))

	return &token, nil
}

func (c *Client) buildPayload(req *TokenRequest) snapPayload {
	var p snapPayload
	p.TransactionDetails.OrderID = req.OrderID
	p.TransactionDetails.GrossAmount = roundAmount(req.TotalPrice)

	switch {
	case len(req.Items) > 0:
		for _, item := range req.Items {
			qty := item.Quantity
			if qty == 0 {
				qty = 1
			}
			p.ItemDetails = append(p.ItemDetails, snapItem{
				ID:       item.ProductID.Hex(),
				Price:    roundAmount(item.Price),
				Quantity: qty,
				Name:     truncate(item.Title, maxItemNameLen),
			})
		}
	case req.ProductID != "":
		price := req.PricePerUnit
		if price == 0 {
			price = req.TotalPrice
		}
		qty := req.Quantity
		if qty == 0 {
			qty = 1
		}
		title := req.ProductTitle
		if title == "" {
			title = "Product"
		}
		p.ItemDetails = []snapItem{{
			ID:       req.ProductID,
			Price:    roundAmount(price),
			Quantity: qty,
			Name:     truncate(title, maxItemNameLen),
		}}
	default:
		p.ItemDetails = []snapItem{{
			ID:       req.OrderID,
			Price:    roundAmount(req.TotalPrice),
			Quantity: 1,
			Name:     "Pembelian Produk Digital",
		}}
	}

	p.CustomerDetails.FirstName = req.Customer.Name
	p.CustomerDetails.Email = req.Customer.Email
	p.CustomerDetails.Phone = req.Customer.Phone
	p.EnabledPayments = enabledPayments
	p.Callbacks.Finish = fmt.Sprintf("%s?order_id=%s", c.finishURL, req.OrderID)

	return p
}

func roundAmount(v float64) int64 {
	return int64(math.Round(v))
}

// truncate trims to n runes so a multi-byte title is never cut mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
