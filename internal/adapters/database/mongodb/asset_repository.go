package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAssetRepository struct {
	BaseRepository
}

func newMongoAssetRepository(db *mongo.Database) *MongoAssetRepository {
	return &MongoAssetRepository{BaseRepository{db: db}}
}

var _ portsrepo.AssetRepositoryFacade = (*MongoAssetRepository)(nil)

func (r *MongoAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	if _, err := r.collection(assetsCollection).InsertOne(ctx, toAssetDocument(asset)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save asset: %w", err)
	}
	return nil
}

func (r *MongoAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	var doc assetDocument
	err := r.collection(assetsCollection).FindOne(ctx, bson.M{"_id": assetID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	asset := doc.toDomain()
	return &asset, nil
}

func (r *MongoAssetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter, opts domain.ListOptions) ([]domain.Asset, error) {
	query := bson.M{}
	if filter.HREmail != "" {
		query["hrEmail"] = filter.HREmail
	}
	if filter.Search != "" {
		query["productName"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	}

	cursor, err := r.collection(assetsCollection).Find(ctx, query, findOptions("dataAdded", opts.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	docs, err := decodeAll[assetDocument](ctx, cursor)
	if err != nil {
		return nil, err
	}
	assets := make([]domain.Asset, 0, len(docs))
	for _, doc := range docs {
		assets = append(assets, doc.toDomain())
	}
	return assets, nil
}

// decrementAttempts bounds retries when a legacy string quantity changes
// between the read and the conditional rewrite.
const decrementAttempts = 3

// DecrementAvailableQuantity takes one unit with a conditional $inc. $gte only
// matches numeric values, so legacy documents holding the quantity as a string
// are parsed and rewritten as a number, filtered on the string that was read.
func (r *MongoAssetRepository) DecrementAvailableQuantity(ctx context.Context, assetID string) (int, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	for range decrementAttempts {
		filter := bson.M{"_id": assetID, "availableQuantity": bson.M{"$gte": 1}}
		update := bson.M{"$inc": bson.M{"availableQuantity": -1}}

		var doc assetDocument
		err := r.collection(assetsCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
		if err == nil {
			remaining, _ := quantityValue(doc.AvailableQuantity)
			return remaining, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("failed to decrement asset %s: %w", assetID, err)
		}

		var current assetDocument
		if err := r.collection(assetsCollection).FindOne(ctx, bson.M{"_id": assetID}).Decode(&current); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return 0, apperrors.ErrNotFound
			}
			return 0, fmt.Errorf("failed to check asset %s: %w", assetID, err)
		}

		stored, isString := current.AvailableQuantity.(string)
		if !isString {
			if _, ok := quantityValue(current.AvailableQuantity); ok {
				return 0, apperrors.ErrInsufficientInventory
			}
			return 0, fmt.Errorf("%w: availableQuantity of asset %s is not a number", apperrors.ErrValidation, assetID)
		}
		quantity, ok := quantityValue(stored)
		if !ok {
			return 0, fmt.Errorf("%w: availableQuantity of asset %s is not a number", apperrors.ErrValidation, assetID)
		}
		if quantity < 1 {
			return 0, apperrors.ErrInsufficientInventory
		}

		res, err := r.collection(assetsCollection).UpdateOne(ctx,
			bson.M{"_id": assetID, "availableQuantity": stored},
			bson.M{"$set": bson.M{"availableQuantity": quantity - 1}})
		if err != nil {
			return 0, fmt.Errorf("failed to decrement asset %s: %w", assetID, err)
		}
		if res.ModifiedCount == 1 {
			return quantity - 1, nil
		}
	}
	return 0, fmt.Errorf("asset %s changed while decrementing", assetID)
}

func (r *MongoAssetRepository) IncrementAvailableQuantity(ctx context.Context, assetID string) (int, error) {
	update := bson.M{"$inc": bson.M{"availableQuantity": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc assetDocument
	err := r.collection(assetsCollection).FindOneAndUpdate(ctx, bson.M{"_id": assetID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment asset %s: %w", assetID, err)
	}
	quantity, _ := quantityValue(doc.AvailableQuantity)
	return quantity, nil
}
