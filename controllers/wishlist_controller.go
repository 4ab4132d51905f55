package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cartlink/database"
	"cartlink/models"
	"cartlink/utils"
)

// ToggleWishlist adds the product when absent and removes it when present.
// Toggling twice leaves the wishlist as it was.
func ToggleWishlist(c *gin.Context) {
	userIDHex := c.MustGet("userId").(string)
	userID, _ := primitive.ObjectIDFromHex(userIDHex)

	productId := c.Param("productId")
	if _, err := primitive.ObjectIDFromHex(productId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wishlist models.Wishlist
	err := database.WishlistCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&wishlist)
	if err != nil && err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}

	wishlist.UserID = userID
	wishlist.ProductIDs = utils.ToggleID(wishlist.ProductIDs, productId)
	wishlist.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err = database.WishlistCollection.ReplaceOne(ctx, bson.M{"_id": userID}, wishlist, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
		return
	}

	wishlisted := false
	for _, id := range wishlist.ProductIDs {
		if id == productId {
			wishlisted = true
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Wishlist updated",
		"productId":  productId,
		"wishlisted": wishlisted,
		"count":      len(wishlist.ProductIDs),
	})
}

// GetWishlist resolves the wishlist into product records, skipping ids whose
// product no longer exists.
func GetWishlist(c *gin.Context) {
	userIDHex := c.MustGet("userId").(string)
	userID, _ := primitive.ObjectIDFromHex(userIDHex)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wishlist models.Wishlist
	err := database.WishlistCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&wishlist)
	if err != nil && err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}

	var products []models.Product = []models.Product{}
	for _, idHex := range wishlist.ProductIDs {
		objID, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			continue
		}
		var product models.Product
		if err := database.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
			continue
		}
		products = append(products, product)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": products})
}
