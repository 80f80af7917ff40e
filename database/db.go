package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store owns the MongoDB client for the lifetime of the process. Repositories
// receive Store.DB rather than reaching for a package-level client.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect builds a client for uri and selects database name. The driver dials
// lazily, so an unreachable server is reported by Ping, not here.
func Connect(ctx context.Context, uri, name string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	return &Store{Client: client, DB: client.Database(name)}, nil
}

// Ping checks the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return fmt.Errorf("record store not configured")
	}
	return s.Client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the client; safe on a nil store.
func (s *Store) Disconnect(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Disconnect(ctx)
}
