package pgsql

import (
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       newTxManager(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		PackageRepo:     newPgxPackageRepository(dbPool),
		AssetRepo:       newPgxAssetRepository(dbPool),
		RequestRepo:     newPgxRequestRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		AffiliationRepo: newPgxAffiliationRepository(dbPool),
		AssignmentRepo:  newPgxAssignmentRepository(dbPool),
	}
}
