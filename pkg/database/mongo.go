package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient connects to MongoDB and pings the primary. Multi-document
// transactions need a replica set or sharded cluster behind uri.
func NewMongoClient(ctx context.Context, uri string, logger *slog.Logger) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI cannot be empty")
	}

	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("Connected to MongoDB")
	return client, nil
}

// CloseMongoClient disconnects the client, waiting at most five seconds.
func CloseMongoClient(client *mongo.Client, logger *slog.Logger) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect from MongoDB", slog.String("error", err.Error()))
		return
	}
	logger.Info("MongoDB client disconnected")
}
