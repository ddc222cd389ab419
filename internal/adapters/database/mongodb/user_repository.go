package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	BaseRepository
}

func newMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{BaseRepository{db: db}}
}

var _ portsrepo.UserRepositoryFacade = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDocument
	err := r.collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", email, err)
	}
	user := doc.toDomain()
	return &user, nil
}

func (r *MongoUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if _, err := r.collection(usersCollection).InsertOne(ctx, toUserDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) AddPackageLimit(ctx context.Context, email string, seats int, subscription string) (*domain.User, error) {
	update := bson.M{
		"$inc": bson.M{"packageLimit": seats},
		"$set": bson.M{"subscription": subscription},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := r.collection(usersCollection).FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to add package limit for %s: %w", email, err)
	}
	user := doc.toDomain()
	return &user, nil
}
