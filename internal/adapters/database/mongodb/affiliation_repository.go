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

type MongoAffiliationRepository struct {
	BaseRepository
}

func newMongoAffiliationRepository(db *mongo.Database) *MongoAffiliationRepository {
	return &MongoAffiliationRepository{BaseRepository{db: db}}
}

var _ portsrepo.AffiliationRepositoryFacade = (*MongoAffiliationRepository)(nil)

func (r *MongoAffiliationRepository) FindAffiliation(ctx context.Context, employeeEmail, hrEmail string) (*domain.Affiliation, error) {
	var doc affiliationDocument
	filter := bson.M{"employeeEmail": employeeEmail, "hrEmail": hrEmail}
	if err := r.collection(affiliationsCollection).FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find affiliation: %w", err)
	}
	affiliation := doc.toDomain()
	return &affiliation, nil
}

func (r *MongoAffiliationRepository) ListAffiliations(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Affiliation, error) {
	query := bson.M{}
	if hrEmail != "" {
		query["hrEmail"] = hrEmail
	}
	cursor, err := r.collection(affiliationsCollection).Find(ctx, query, findOptions("affiliationDate", opts.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query affiliations: %w", err)
	}
	docs, err := decodeAll[affiliationDocument](ctx, cursor)
	if err != nil {
		return nil, err
	}
	affiliations := make([]domain.Affiliation, 0, len(docs))
	for _, doc := range docs {
		affiliations = append(affiliations, doc.toDomain())
	}
	return affiliations, nil
}

func (r *MongoAffiliationRepository) SaveAffiliation(ctx context.Context, affiliation domain.Affiliation) error {
	doc := toAffiliationDocument(affiliation)
	res, err := r.collection(affiliationsCollection).UpdateOne(ctx,
		bson.M{"employeeEmail": doc.EmployeeEmail, "hrEmail": doc.HREmail},
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save affiliation: %w", err)
	}
	if res.UpsertedCount == 0 {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *MongoAffiliationRepository) DeleteAffiliation(ctx context.Context, affiliationID, hrEmail string) (int64, error) {
	res, err := r.collection(affiliationsCollection).DeleteOne(ctx,
		bson.M{"_id": affiliationID, "hrEmail": hrEmail},
		options.Delete().SetCollation(caseInsensitive))
	if err != nil {
		return 0, fmt.Errorf("failed to delete affiliation %s: %w", affiliationID, err)
	}
	return res.DeletedCount, nil
}
