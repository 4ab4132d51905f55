package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cartlink/models"
)

var Client *mongo.Client
var DB *mongo.Database

func ConnectMongo(uri, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	DB = client.Database(dbName)
	return nil
}

var UserCollection *mongo.Collection
var ProductCollection *mongo.Collection
var CategoryCollection *mongo.Collection
var OrderCollection *mongo.Collection
var CartCollection *mongo.Collection
var WishlistCollection *mongo.Collection
var SettingsCollection *mongo.Collection

func InitCollections() {
	UserCollection = DB.Collection("users")
	ProductCollection = DB.Collection("products")
	CategoryCollection = DB.Collection("categories")
	OrderCollection = DB.Collection("orders")
	CartCollection = DB.Collection("carts")
	WishlistCollection = DB.Collection("wishlists")
	SettingsCollection = DB.Collection("settings")
}

// SeedCategories inserts the default catalog categories when the collection
// is empty, so a fresh database serves a browsable storefront immediately.
func SeedCategories(ctx context.Context) error {
	count, err := CategoryCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(models.DefaultCategories))
	for _, c := range models.DefaultCategories {
		docs = append(docs, c)
	}
	_, err = CategoryCollection.InsertMany(ctx, docs)
	return err
}

// SeedSettings writes the default site settings document if none exists.
func SeedSettings(ctx context.Context) error {
	err := SettingsCollection.FindOne(ctx, bson.M{"_id": models.SettingsID}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}
	_, err = SettingsCollection.InsertOne(ctx, models.DefaultSettings())
	return err
}
