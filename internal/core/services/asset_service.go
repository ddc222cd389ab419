package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/google/uuid"
)

type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: assetRepo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, callerEmail string) (*domain.Asset, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return nil, fmt.Errorf("%w: productName is required", apperrors.ErrValidation)
	}
	if req.ProductType != domain.ProductReturnable && req.ProductType != domain.ProductNonReturnable {
		return nil, fmt.Errorf("%w: unknown productType %q", apperrors.ErrValidation, req.ProductType)
	}
	if req.AvailableQuantity == nil || *req.AvailableQuantity < 0 {
		return nil, fmt.Errorf("%w: availableQuantity must be zero or more", apperrors.ErrValidation)
	}

	asset := domain.Asset{
		AssetID:           uuid.NewString(),
		ProductName:       name,
		ProductType:       req.ProductType,
		AvailableQuantity: *req.AvailableQuantity,
		HREmail:           nonEmpty(req.HREmail, callerEmail),
		CompanyName:       req.CompanyName,
		DataAdded:         time.Now().UTC(),
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: product already exists", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save asset", slog.String("asset_id", asset.AssetID))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.LogInfo(ctx, "Asset created", slog.String("asset_id", asset.AssetID), slog.Int("quantity", asset.AvailableQuantity))
	return &asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, filter domain.AssetFilter, opts domain.ListOptions) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx, filter, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets")
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		return []domain.Asset{}, nil
	}
	return assets, nil
}
