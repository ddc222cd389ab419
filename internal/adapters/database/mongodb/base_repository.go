// Package mongodb stores the domain in MongoDB, one collection per entity.
// Multi-document transactions need a replica set.
package mongodb

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	usersCollection          = "users"
	packagesCollection       = "package_collection"
	assetsCollection         = "asset_collection"
	requestsCollection       = "request_collection"
	paymentsCollection       = "payment_collection"
	affiliationsCollection   = "affiliation_collection"
	assignedAssetsCollection = "assigned_asset_collection"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db *mongo.Database
}

func (r *BaseRepository) collection(name string) *mongo.Collection {
	return r.db.Collection(name)
}

// findOptions sorts by field descending and applies a positive limit.
func findOptions(sortField string, limit int) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return opts
}

// decodeAll drains cursor into a slice of T.
func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)
	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

// TxManager runs units of work inside a MongoDB session transaction.
type TxManager struct {
	client *mongo.Client
}

func newTxManager(client *mongo.Client) *TxManager {
	return &TxManager{client: client}
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

// WithinTransaction joins the session already carried by ctx, if any. The
// driver may rerun fn on transient transaction errors.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start mongo session: %w", err)
	}
	defer session.EndSession(context.WithoutCancel(ctx))

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
