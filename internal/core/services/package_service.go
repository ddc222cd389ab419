package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
)

type packageService struct {
	BaseService
	packageRepo portsrepo.PackageReader
}

func NewPackageService(packageRepo portsrepo.PackageReader) portssvc.PackageSvcFacade {
	return &packageService{packageRepo: packageRepo}
}

func (s *packageService) ListPackages(ctx context.Context, opts domain.ListOptions) ([]domain.Package, error) {
	packages, err := s.packageRepo.ListPackages(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list packages")
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	if packages == nil {
		return []domain.Package{}, nil
	}
	return packages, nil
}
