package mongodb

import (
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider wires every mongo repository onto one database.
func NewRepositoryProvider(client *mongo.Client, dbName string) portsrepo.RepositoryProvider {
	db := client.Database(dbName)
	return portsrepo.RepositoryProvider{
		TxManager:       newTxManager(client),
		UserRepo:        newMongoUserRepository(db),
		PackageRepo:     newMongoPackageRepository(db),
		AssetRepo:       newMongoAssetRepository(db),
		RequestRepo:     newMongoRequestRepository(db),
		PaymentRepo:     newMongoPaymentRepository(db),
		AffiliationRepo: newMongoAffiliationRepository(db),
		AssignmentRepo:  newMongoAssignmentRepository(db),
	}
}
