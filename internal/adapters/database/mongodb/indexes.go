package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func collectionIndexes() map[string][]mongo.IndexModel {
	unique := options.Index().SetUnique(true)
	return map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		packagesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true).SetCollation(caseInsensitive)},
		},
		assetsCollection: {
			{Keys: bson.D{{Key: "productName", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "hrEmail", Value: 1}, {Key: "dataAdded", Value: -1}}},
		},
		requestsCollection: {
			{Keys: bson.D{{Key: "hrEmail", Value: 1}, {Key: "requestDate", Value: -1}}},
			{Keys: bson.D{{Key: "requesterEmail", Value: 1}, {Key: "requestDate", Value: -1}}},
		},
		paymentsCollection: {
			{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "hrEmail", Value: 1}, {Key: "paymentDate", Value: -1}}},
		},
		affiliationsCollection: {
			{Keys: bson.D{{Key: "employeeEmail", Value: 1}, {Key: "hrEmail", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "hrEmail", Value: 1}, {Key: "affiliationDate", Value: -1}}},
		},
		assignedAssetsCollection: {
			{Keys: bson.D{{Key: "employeeEmail", Value: 1}, {Key: "assignedDate", Value: -1}}},
		},
	}
}

// Bootstrap creates the collections' indexes and seeds the package catalog.
// It is safe to run on every start.
func Bootstrap(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	for name, models := range collectionIndexes() {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}

	seeded := 0
	for _, pkg := range domain.DefaultCatalog() {
		doc := toPackageDocument(pkg)
		res, err := db.Collection(packagesCollection).UpdateOne(ctx,
			bson.M{"name": doc.Name},
			bson.M{"$setOnInsert": doc},
			options.Update().SetUpsert(true).SetCollation(caseInsensitive),
		)
		if err != nil {
			return fmt.Errorf("failed to seed package %s: %w", pkg.Name, err)
		}
		seeded += int(res.UpsertedCount)
	}

	logger.Info("MongoDB bootstrap complete", slog.String("database", db.Name()), slog.Int("packages_seeded", seeded))
	return nil
}
