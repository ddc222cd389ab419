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

// caseInsensitive matches strings ignoring case and diacritics.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

type MongoPackageRepository struct {
	BaseRepository
}

func newMongoPackageRepository(db *mongo.Database) *MongoPackageRepository {
	return &MongoPackageRepository{BaseRepository{db: db}}
}

var _ portsrepo.PackageRepositoryFacade = (*MongoPackageRepository)(nil)

func (r *MongoPackageRepository) ListPackages(ctx context.Context, opts domain.ListOptions) ([]domain.Package, error) {
	cursor, err := r.collection(packagesCollection).Find(ctx, bson.M{}, findOptions("employeeLimit", opts.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	docs, err := decodeAll[packageDocument](ctx, cursor)
	if err != nil {
		return nil, err
	}
	packages := make([]domain.Package, 0, len(docs))
	for _, doc := range docs {
		packages = append(packages, doc.toDomain())
	}
	return packages, nil
}

func (r *MongoPackageRepository) FindPackageByName(ctx context.Context, name string) (*domain.Package, error) {
	var doc packageDocument
	opts := options.FindOne().SetCollation(caseInsensitive)
	err := r.collection(packagesCollection).FindOne(ctx, bson.M{"name": name}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find package %s: %w", name, err)
	}
	pkg := doc.toDomain()
	return &pkg, nil
}
