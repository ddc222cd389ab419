package services

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/dto"
)

// AssetSvcFacade manages the inventory.
type AssetSvcFacade interface {
	// CreateAsset adds an inventory line owned by callerEmail unless the body names an HR.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, callerEmail string) (*domain.Asset, error)

	// ListAssets returns assets, newest first.
	ListAssets(ctx context.Context, filter domain.AssetFilter, opts domain.ListOptions) ([]domain.Asset, error)
}
