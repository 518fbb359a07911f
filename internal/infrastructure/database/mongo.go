package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoHandle owns the durable-store connection with an explicit lifecycle
// instead of module-level connection flags.
type MongoHandle struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to the document store and verifies reachability.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoHandle, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &MongoHandle{client: client, db: client.Database(dbName)}, nil
}

// Database returns the handle's database.
func (h *MongoHandle) Database() *mongo.Database { return h.db }

// HealthCheck reports durable-store reachability.
func (h *MongoHandle) HealthCheck(ctx context.Context) error {
	return h.client.Ping(ctx, nil)
}

// Close releases the connection.
func (h *MongoHandle) Close(ctx context.Context) error {
	return h.client.Disconnect(ctx)
}
