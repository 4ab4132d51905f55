package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cartlink/database"
	"cartlink/models"
)

func GetOrdersAdmin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := database.OrderCollection.Find(ctx, bson.M{}, opts)
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

func GetOrderByIDAdmin(c *gin.Context) {
	orderId := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	err := database.OrderCollection.FindOne(ctx, bson.M{"_id": orderId}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": order})
}

// UpdateOrderStatus moves an order through the explicit transition table.
// There is no cycling back from completed: completed and cancelled are
// terminal.
func UpdateOrderStatus(c *gin.Context) {
	orderId := c.Param("id")

	var body struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !models.ValidOrderStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existingOrder models.Order
	err := database.OrderCollection.FindOne(ctx, bson.M{"_id": orderId}).Decode(&existingOrder)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if !models.CanTransition(existingOrder.Status, body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Cannot change status from %s to %s", existingOrder.Status, body.Status),
		})
		return
	}

	update := bson.M{
		"$set": bson.M{
			"status":     body.Status,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updatedOrder models.Order
	err = database.OrderCollection.FindOneAndUpdate(ctx, bson.M{"_id": orderId}, update, opts).Decode(&updatedOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"data":    updatedOrder,
	})
}

func DeleteOrderAdmin(c *gin.Context) {
	orderId := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.OrderCollection.DeleteOne(ctx, bson.M{"_id": orderId})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted", "id": orderId})
}

// GetDashboardStats backs the admin dashboard header: catalog size, order
// volume, pending queue and revenue over orders that reached payment.
func GetDashboardStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productCount, err := database.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	orderCount, err := database.OrderCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pendingCount, err := database.OrderCollection.CountDocuments(ctx, bson.M{"status": models.OrderStatusPending})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	paidStatuses := []models.OrderStatus{
		models.OrderStatusPaid,
		models.OrderStatusProcessed,
		models.OrderStatusCompleted,
	}
	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": paidStatuses}}},
		{"$group": bson.M{"_id": nil, "revenue": bson.M{"$sum": "$total"}}},
	}
	cursor, err := database.OrderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var agg []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &agg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var revenue float64
	if len(agg) > 0 {
		revenue = agg[0].Revenue
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": gin.H{
		"products":      productCount,
		"orders":        orderCount,
		"pendingOrders": pendingCount,
		"revenue":       revenue,
	}})
}

func GetSettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var settings models.SiteSettings
	err := database.SettingsCollection.FindOne(ctx, bson.M{"_id": models.SettingsID}).Decode(&settings)
	if err != nil {
		settings = models.DefaultSettings()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": settings})
}

func UpdateSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	settings.ID = models.SettingsID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := database.SettingsCollection.ReplaceOne(ctx, bson.M{"_id": models.SettingsID}, settings, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "data": settings})
}
