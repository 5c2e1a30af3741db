package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client            *mongo.Client
	ProductCollection *mongo.Collection
	OrderCollection   *mongo.Collection
)

// Connect dials MongoDB and binds the package collections. Callers own the
// decision to fall back to the in-memory store when this fails.
func Connect(ctx context.Context, uri, dbName string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	Client = client
	ProductCollection = client.Database(dbName).Collection("products")
	OrderCollection = client.Database(dbName).Collection("orders")
	return nil
}

func Disconnect(ctx context.Context) {
	if Client != nil {
		_ = Client.Disconnect(ctx)
	}
}
