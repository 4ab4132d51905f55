package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cartlink/database"
	"cartlink/models"
	"cartlink/utils"
)

func CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, category and price are required"})
		return
	}

	product.ID = primitive.NewObjectID()
	if product.Slug == "" {
		product.Slug = utils.Slugify(product.Title)
	}
	if product.OriginalPrice == 0 {
		product.OriginalPrice = product.Price
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.ProductCollection.InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product created", "product": product})
}

func GetProductsAdmin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var products []models.Product = []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Fetch products success",
		"count":    len(products),
		"products": products,
	})
}

func UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var body struct {
		Title         *string  `json:"title"`
		Category      *string  `json:"category"`
		CategoryLabel *string  `json:"categoryLabel"`
		Price         *float64 `json:"price"`
		OriginalPrice *float64 `json:"originalPrice"`
		Image         *string  `json:"image"`
		Description   *string  `json:"description"`
		Rating        *float64 `json:"rating"`
		Reviews       *int     `json:"reviews"`
		Badge         *string  `json:"badge"`
		Featured      *bool    `json:"featured"`
		Slug          *string  `json:"slug"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	update := bson.M{}
	if body.Title != nil {
		update["title"] = *body.Title
		// Keep the slug in sync unless the caller pins one explicitly.
		if body.Slug == nil {
			update["slug"] = utils.Slugify(*body.Title)
		}
	}
	if body.Category != nil {
		update["category"] = *body.Category
	}
	if body.CategoryLabel != nil {
		update["category_label"] = *body.CategoryLabel
	}
	if body.Price != nil {
		update["price"] = *body.Price
	}
	if body.OriginalPrice != nil {
		update["original_price"] = *body.OriginalPrice
	}
	if body.Image != nil {
		update["image"] = *body.Image
	}
	if body.Description != nil {
		update["description"] = *body.Description
	}
	if body.Rating != nil {
		update["rating"] = *body.Rating
	}
	if body.Reviews != nil {
		update["reviews"] = *body.Reviews
	}
	if body.Badge != nil {
		update["badge"] = *body.Badge
	}
	if body.Featured != nil {
		update["featured"] = *body.Featured
	}
	if body.Slug != nil {
		update["slug"] = *body.Slug
	}
	update["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updatedProduct models.Product
	err = database.ProductCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&updatedProduct)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, updatedProduct)
}

// DeleteProduct removes the catalog record only. Cart and order references to
// the deleted product are left as-is.
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.ProductCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": id})
}
