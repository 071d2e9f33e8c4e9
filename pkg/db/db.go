package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB dials MongoDB and verifies the connection with a ping. The
// returned client is handed to the composition root; nothing in this package
// keeps a reference.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// GetCollection returns a named collection from the given database.
func GetCollection(client *mongo.Client, database, collectionName string) *mongo.Collection {
	return client.Database(database).Collection(collectionName)
}
