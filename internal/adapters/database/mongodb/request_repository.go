package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRequestRepository struct {
	BaseRepository
}

func newMongoRequestRepository(db *mongo.Database) *MongoRequestRepository {
	return &MongoRequestRepository{BaseRepository{db: db}}
}

var _ portsrepo.RequestRepositoryFacade = (*MongoRequestRepository)(nil)

func (r *MongoRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	if _, err := r.collection(requestsCollection).InsertOne(ctx, toRequestDocument(request)); err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	return nil
}

func (r *MongoRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	var doc requestDocument
	err := r.collection(requestsCollection).FindOne(ctx, bson.M{"_id": requestID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request %s: %w", requestID, err)
	}
	request := doc.toDomain()
	return &request, nil
}

func (r *MongoRequestRepository) ListRequests(ctx context.Context, filter domain.RequestFilter, opts domain.ListOptions) ([]domain.Request, error) {
	query := bson.M{}
	if filter.HREmail != "" {
		query["hrEmail"] = filter.HREmail
	}
	if filter.RequesterEmail != "" {
		query["requesterEmail"] = filter.RequesterEmail
	}
	if filter.Status != "" {
		query["requestStatus"] = string(filter.Status)
	}

	cursor, err := r.collection(requestsCollection).Find(ctx, query, findOptions("requestDate", opts.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	docs, err := decodeAll[requestDocument](ctx, cursor)
	if err != nil {
		return nil, err
	}
	requests := make([]domain.Request, 0, len(docs))
	for _, doc := range docs {
		requests = append(requests, doc.toDomain())
	}
	return requests, nil
}

func (r *MongoRequestRepository) UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus, decidedAt time.Time) (*domain.Request, error) {
	filter := bson.M{"_id": requestID, "requestStatus": string(domain.RequestPending)}
	update := bson.M{"$set": bson.M{"requestStatus": string(status), "approvalDate": decidedAt}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc requestDocument
	err := r.collection(requestsCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		request := doc.toDomain()
		return &request, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update request %s: %w", requestID, err)
	}

	if _, findErr := r.FindRequestByID(ctx, requestID); findErr != nil {
		return nil, findErr
	}
	return nil, apperrors.ErrConflict
}
