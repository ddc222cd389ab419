package services

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

type PackageSvcFacade interface {
	// ListPackages returns the catalog, largest employee limit first.
	ListPackages(ctx context.Context, opts domain.ListOptions) ([]domain.Package, error)
}
