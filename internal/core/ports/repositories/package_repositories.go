package repositories

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// PackageReader reads the subscription catalog. The catalog has no writer;
// it is seeded by migrations or the mongo bootstrap.
type PackageReader interface {
	// ListPackages returns the catalog sorted by employeeLimit descending.
	ListPackages(ctx context.Context, opts domain.ListOptions) ([]domain.Package, error)

	// FindPackageByName looks a package up by its unique name.
	FindPackageByName(ctx context.Context, name string) (*domain.Package, error)
}

type PackageRepositoryFacade interface {
	PackageReader
}
