package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"cartlink/database"
	"cartlink/models"
)

const maxCartQuantity = 99

func AddToCart(c *gin.Context) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	userId, _ := c.Get("userId")
	objUserID, _ := primitive.ObjectIDFromHex(userId.(string))
	objProductID, err := primitive.ObjectIDFromHex(body.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	err = database.ProductCollection.FindOne(ctx, bson.M{"_id": objProductID}).Decode(&product)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// Adding the same product again merges into the existing line.
	var existing models.CartItem
	err = database.CartCollection.FindOne(ctx, bson.M{"userId": objUserID, "productId": objProductID}).Decode(&existing)
	if err == nil {
		quantity := existing.Quantity + body.Quantity
		if quantity > maxCartQuantity {
			quantity = maxCartQuantity
		}
		_, err = database.CartCollection.UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"quantity": quantity}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "data": gin.H{
			"productId": objProductID,
			"quantity":  quantity,
			"subtotal":  float64(quantity) * existing.Price,
		}})
		return
	}

	// Snapshot price, title and image at add-time.
	cartItem := models.CartItem{
		ID:            primitive.NewObjectID(),
		UserID:        objUserID,
		ProductID:     objProductID,
		Title:         product.Title,
		Price:         product.Price,
		Image:         product.Image,
		CategoryLabel: product.CategoryLabel,
		Quantity:      body.Quantity,
		CreatedAt:     time.Now(),
	}

	_, err = database.CartCollection.InsertOne(ctx, cartItem)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "data": gin.H{
		"cartId":    cartItem.ID,
		"productId": cartItem.ProductID,
		"title":     cartItem.Title,
		"price":     cartItem.Price,
		"quantity":  cartItem.Quantity,
		"subtotal":  float64(cartItem.Quantity) * cartItem.Price,
	}})
}

func GetCart(c *gin.Context) {
	userId, _ := c.Get("userId")
	objUserID, _ := primitive.ObjectIDFromHex(userId.(string))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.CartCollection.Find(ctx, bson.M{"userId": objUserID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var cartItems []models.CartItem
	if err := cursor.All(ctx, &cartItems); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var lines []gin.H = []gin.H{}
	var total float64
	var count int
	for _, item := range cartItems {
		subtotal := float64(item.Quantity) * item.Price
		total += subtotal
		count += item.Quantity
		lines = append(lines, gin.H{
			"productId":     item.ProductID,
			"title":         item.Title,
			"price":         item.Price,
			"image":         item.Image,
			"categoryLabel": item.CategoryLabel,
			"quantity":      item.Quantity,
			"subtotal":      subtotal,
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": gin.H{
		"items": lines,
		"total": total,
		"count": count,
	}})
}

func UpdateCart(c *gin.Context) {
	userIDHex := c.MustGet("userId").(string)
	userID, _ := primitive.ObjectIDFromHex(userIDHex)

	productId := c.Param("productId")
	productObjID, err := primitive.ObjectIDFromHex(productId)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Quantity < 0 || body.Quantity > maxCartQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cartItem models.CartItem
	err = database.CartCollection.FindOne(ctx, bson.M{"userId": userID, "productId": productObjID}).Decode(&cartItem)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		}
		return
	}

	if body.Quantity == 0 {
		_, err := database.CartCollection.DeleteOne(ctx, bson.M{"userId": userID, "productId": productObjID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove product from cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart"})
		return
	}

	filter := bson.M{"userId": userID, "productId": productObjID}
	update := bson.M{"$set": bson.M{"quantity": body.Quantity}}

	_, err = database.CartCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "data": gin.H{
		"productId": productObjID,
		"quantity":  body.Quantity,
		"subtotal":  float64(body.Quantity) * cartItem.Price,
	}})
}

func RemoveFromCart(c *gin.Context) {
	userIDHex := c.MustGet("userId").(string)
	userID, _ := primitive.ObjectIDFromHex(userIDHex)

	productId := c.Param("productId")
	productObjID, err := primitive.ObjectIDFromHex(productId)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.CartCollection.DeleteOne(ctx, bson.M{
		"userId":    userID,
		"productId": productObjID,
	})
	if err != nil || result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Product removed from cart",
		"productId": productObjID.Hex(),
	})
}

func ClearCart(c *gin.Context) {
	userIDHex := c.MustGet("userId").(string)
	userID, _ := primitive.ObjectIDFromHex(userIDHex)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.CartCollection.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
