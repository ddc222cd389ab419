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

type MongoAssignmentRepository struct {
	BaseRepository
}

func newMongoAssignmentRepository(db *mongo.Database) *MongoAssignmentRepository {
	return &MongoAssignmentRepository{BaseRepository{db: db}}
}

var _ portsrepo.AssignmentRepositoryFacade = (*MongoAssignmentRepository)(nil)

func (r *MongoAssignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.AssignedAsset, error) {
	var doc assignmentDocument
	err := r.collection(assignedAssetsCollection).FindOne(ctx, bson.M{"_id": assignmentID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find assignment %s: %w", assignmentID, err)
	}
	assignment := doc.toDomain()
	return &assignment, nil
}

func (r *MongoAssignmentRepository) ListAssignmentsByEmployee(ctx context.Context, employeeEmail string, opts domain.ListOptions) ([]domain.AssignedAsset, error) {
	cursor, err := r.collection(assignedAssetsCollection).Find(ctx,
		bson.M{"employeeEmail": employeeEmail}, findOptions("assignedDate", opts.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	docs, err := decodeAll[assignmentDocument](ctx, cursor)
	if err != nil {
		return nil, err
	}
	assignments := make([]domain.AssignedAsset, 0, len(docs))
	for _, doc := range docs {
		assignments = append(assignments, doc.toDomain())
	}
	return assignments, nil
}

func (r *MongoAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.AssignedAsset) error {
	if _, err := r.collection(assignedAssetsCollection).InsertOne(ctx, toAssignmentDocument(assignment)); err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}
	return nil
}

func (r *MongoAssignmentRepository) MarkAssignmentReturned(ctx context.Context, assignmentID string, returnedAt time.Time) (*domain.AssignedAsset, error) {
	filter := bson.M{"_id": assignmentID, "status": string(domain.AssignmentAssigned)}
	update := bson.M{"$set": bson.M{"status": string(domain.AssignmentReturned), "returnDate": returnedAt}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc assignmentDocument
	err := r.collection(assignedAssetsCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		assignment := doc.toDomain()
		return &assignment, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to return assignment %s: %w", assignmentID, err)
	}

	if _, findErr := r.FindAssignmentByID(ctx, assignmentID); findErr != nil {
		return nil, findErr
	}
	return nil, apperrors.ErrConflict
}
