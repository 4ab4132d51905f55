package controllers

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cartlink/database"
	"cartlink/models"
)

// GetProductsPublic lists the catalog with the storefront filters:
// ?category=, ?featured=true, ?search=, ?sort=price-low|price-high|rating|newest,
// ?limit=.
func GetProductsPublic(c *gin.Context) {
	filter := bson.M{}

	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if c.Query("featured") == "true" {
		filter["featured"] = true
	}
	if search := c.Query("search"); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
			{"category_label": pattern},
		}
	}

	opts := options.Find()
	switch c.Query("sort") {
	case "price-low":
		opts.SetSort(bson.D{{Key: "price", Value: 1}})
	case "price-high":
		opts.SetSort(bson.D{{Key: "price", Value: -1}})
	case "rating":
		opts.SetSort(bson.D{{Key: "rating", Value: -1}})
	case "newest":
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.ParseInt(limitStr, 10, 64); err == nil && limit > 0 {
			opts.SetLimit(limit)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var products []models.Product = []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": products})
}

// GetProductBySlug resolves a product by its URL slug, falling back to a hex
// id so old id-based links keep working.
func GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	err := database.ProductCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if err != nil {
		if objID, idErr := primitive.ObjectIDFromHex(slug); idErr == nil {
			err = database.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
		}
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": product})
}
