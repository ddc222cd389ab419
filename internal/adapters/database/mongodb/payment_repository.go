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

type MongoPaymentRepository struct {
	BaseRepository
}

func newMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{BaseRepository{db: db}}
}

var _ portsrepo.PaymentRepositoryFacade = (*MongoPaymentRepository)(nil)

func (r *MongoPaymentRepository) FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	var doc paymentDocument
	err := r.collection(paymentsCollection).FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", transactionID, err)
	}
	payment := doc.toDomain()
	return &payment, nil
}

func (r *MongoPaymentRepository) ListPaymentsByHR(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Payment, error) {
	cursor, err := r.collection(paymentsCollection).Find(ctx, bson.M{"hrEmail": hrEmail}, findOptions("paymentDate", opts.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	docs, err := decodeAll[paymentDocument](ctx, cursor)
	if err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(docs))
	for _, doc := range docs {
		payments = append(payments, doc.toDomain())
	}
	return payments, nil
}

// SavePayment upserts on transactionId so a replayed payment does not raise a
// duplicate key error inside the surrounding transaction.
func (r *MongoPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	doc := toPaymentDocument(payment)
	res, err := r.collection(paymentsCollection).UpdateOne(ctx,
		bson.M{"transactionId": doc.TransactionID},
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}
	if res.UpsertedCount == 0 {
		return apperrors.ErrDuplicate
	}
	return nil
}
