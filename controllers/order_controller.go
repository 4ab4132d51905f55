package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"cartlink/database"
	"cartlink/models"
	"cartlink/payment"
	"cartlink/services"
)

var snapClient *payment.Client

// InitPayment wires the gateway client. Must be called before the checkout
// routes are served.
func InitPayment(client *payment.Client) {
	snapClient = client
}

type checkoutItem struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type checkoutRequest struct {
	// Cart checkout: one or more line items.
	Items []checkoutItem `json:"items"`

	// Single-product checkout.
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`

	Customer models.CustomerInfo `json:"customer"`
	Notes    string              `json:"notes"`
}

// Checkout assembles an order, persists it as pending and exchanges it for a
// Snap token. Exactly one token fetch per submit; on gateway failure the
// order stays pending and the customer resubmits, nothing retries here.
func Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	single := len(req.Items) == 0
	if single && req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no items"})
		return
	}

	if err := services.ValidateCustomer(req.Customer, single); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var items []models.OrderItem
	var discount float64
	if single {
		product, item, err := resolveLine(ctx, req.ProductID, req.Quantity)
		if err != nil {
			status, msg := lineErrorStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		items = []models.OrderItem{item}
		discount = services.ComputeDiscount(product.OriginalPrice, product.Price, item.Quantity)
	} else {
		for _, line := range req.Items {
			_, item, err := resolveLine(ctx, line.ProductID, line.Quantity)
			if err != nil {
				status, msg := lineErrorStatus(err)
				c.JSON(status, gin.H{"error": msg})
				return
			}
			items = append(items, item)
		}
	}

	order, err := services.AssembleOrder(items, req.Customer, req.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := c.GetString("request_id")

	if err := services.SaveOrder(ctx, order); err != nil {
		zap.L().Error("Checkout failed to persist order",
			zap.String("request_id", requestID),
			zap.String("order_id", order.ID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	tokenReq := &payment.TokenRequest{
		OrderID:    order.ID,
		TotalPrice: order.Total,
		Customer:   order.CustomerInfo,
	}
	if single {
		tokenReq.ProductID = items[0].ProductID.Hex()
		tokenReq.ProductTitle = items[0].Title
		tokenReq.PricePerUnit = items[0].Price
		tokenReq.Quantity = items[0].Quantity
	} else {
		tokenReq.Items = order.Items
	}

	token, err := snapClient.CreateTransaction(ctx, tokenReq)
	if err != nil {
		zap.L().Error("Checkout failed to obtain payment token",
			zap.String("request_id", requestID),
			zap.String("order_id", order.ID),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create payment token. Please try again."})
		return
	}

	resp := gin.H{
		"message":      "Checkout created",
		"orderId":      order.ID,
		"total":        order.Total,
		"token":        token.Token,
		"redirect_url": token.RedirectURL,
	}
	if single && discount > 0 {
		resp["discount"] = discount
	}

	c.JSON(http.StatusOK, resp)
}

var errInvalidProductID = errors.New("invalid productId")

// lineErrorStatus distinguishes a bad id and a missing product from a store
// failure, so a Mongo outage is not reported as "not found".
func lineErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, errInvalidProductID):
		return http.StatusBadRequest, "Invalid productId"
	case errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound, "Product not found"
	default:
		return http.StatusInternalServerError, "Failed to fetch product"
	}
}

// resolveLine freezes the current catalog price into an order line.
func resolveLine(ctx context.Context, productID string, quantity int) (*models.Product, models.OrderItem, error) {
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, models.OrderItem{}, errInvalidProductID
	}

	var product models.Product
	if err := database.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		return nil, models.OrderItem{}, err
	}

	if quantity <= 0 {
		quantity = 1
	}
	if quantity > maxCartQuantity {
		quantity = maxCartQuantity
	}

	return &product, models.OrderItem{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Quantity:  quantity,
		Image:     product.Image,
	}, nil
}

// PaymentNotification handles gateway callbacks. The endpoint is public, so
// the notification's signature_key is verified against the server key before
// anything else; only then is the transaction status mapped to a tagged
// result and applied to the order.
func PaymentNotification(c *gin.Context) {
	var body struct {
		OrderID           string `json:"order_id" binding:"required"`
		TransactionID     string `json:"transaction_id"`
		TransactionStatus string `json:"transaction_status" binding:"required"`
		StatusCode        string `json:"status_code" binding:"required"`
		GrossAmount       string `json:"gross_amount" binding:"required"`
		SignatureKey      string `json:"signature_key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification"})
		return
	}

	if !snapClient.VerifyNotificationSignature(body.OrderID, body.StatusCode, body.GrossAmount, body.SignatureKey) {
		zap.L().Warn("Rejected payment notification with bad signature",
			zap.String("order_id", body.OrderID),
			zap.String("transaction_status", body.TransactionStatus))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := database.OrderCollection.FindOne(ctx, bson.M{"_id": body.OrderID}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	result := payment.Result{
		Kind:          payment.MapTransactionStatus(body.TransactionStatus),
		OrderID:       body.OrderID,
		TransactionID: body.TransactionID,
		RawStatus:     body.TransactionStatus,
	}

	if err := services.ApplyPaymentResult(ctx, &order, result); err != nil {
		zap.L().Error("Failed to apply payment notification",
			zap.String("order_id", order.ID),
			zap.String("transaction_status", body.TransactionStatus),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	zap.L().Info("Payment notification applied",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)))

	c.JSON(http.StatusOK, gin.H{"message": "Notification processed", "status": order.Status})
}

// GetOrders lists the authenticated customer's orders, matched by the email
// frozen into customer_info at checkout time.
func GetOrders(c *gin.Context) {
	email, _ := c.Get("email")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.OrderCollection.Find(ctx, bson.M{"customer_info.email": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var orders []models.Order = []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": orders})
}

// CancelOrder lets a customer cancel their own order while it is still
// pending.
func CancelOrder(c *gin.Context) {
	email, _ := c.Get("email")
	orderId := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":                 orderId,
		"customer_info.email": email,
		"status":              models.OrderStatusPending,
	}
	update := bson.M{
		"$set": bson.M{"status": models.OrderStatusCancelled, "updated_at": time.Now()},
	}

	result, err := database.OrderCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order not found or cannot be cancelled"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}
