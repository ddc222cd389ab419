//go:build integration

package mongodb_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/asset_management_app/internal/adapters/database/mongodb"
	"github.com/SscSPs/asset_management_app/internal/adapters/database/repotest"
	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestMongoRepositories(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	// Transactions need a replica set.
	ctr, err := tcmongo.Run(ctx, "mongo:7", tcmongo.WithReplicaSet("rs0"))
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetDirect(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	const dbName = "asset_management_test"
	require.NoError(t, mongodb.Bootstrap(ctx, client.Database(dbName), logger))
	// Bootstrapping twice keeps one copy of the catalog.
	require.NoError(t, mongodb.Bootstrap(ctx, client.Database(dbName), logger))

	repos := mongodb.NewRepositoryProvider(client, dbName)
	repotest.Run(t, repos)

	t.Run("legacy string quantities", func(t *testing.T) {
		assets := client.Database(dbName).Collection("asset_collection")
		legacy := map[string]string{"two": "2", "none": "0", "word": "many"}
		ids := map[string]string{}
		for name, quantity := range legacy {
			ids[name] = uuid.NewString()
			_, err := assets.InsertOne(ctx, bson.M{
				"_id": ids[name], "productName": name, "productType": "returnable",
				"availableQuantity": quantity, "dataAdded": time.Now().UTC(),
			})
			require.NoError(t, err)
		}

		left, err := repos.AssetRepo.DecrementAvailableQuantity(ctx, ids["two"])
		require.NoError(t, err)
		assert.Equal(t, 1, left)
		left, err = repos.AssetRepo.DecrementAvailableQuantity(ctx, ids["two"])
		require.NoError(t, err)
		assert.Equal(t, 0, left)
		_, err = repos.AssetRepo.DecrementAvailableQuantity(ctx, ids["two"])
		assert.ErrorIs(t, err, apperrors.ErrInsufficientInventory)

		_, err = repos.AssetRepo.DecrementAvailableQuantity(ctx, ids["none"])
		assert.ErrorIs(t, err, apperrors.ErrInsufficientInventory)
		_, err = repos.AssetRepo.DecrementAvailableQuantity(ctx, ids["word"])
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
