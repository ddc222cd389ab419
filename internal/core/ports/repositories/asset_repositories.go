package repositories

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets returns assets sorted by dataAdded descending.
	ListAssets(ctx context.Context, filter domain.AssetFilter, opts domain.ListOptions) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset persists a new asset. Returns apperrors.ErrDuplicate on a taken productName.
	SaveAsset(ctx context.Context, asset domain.Asset) error
}

// AssetInventory moves stock. Both operations are single conditional updates.
type AssetInventory interface {
	// DecrementAvailableQuantity takes one unit if at least one is available and
	// returns the remaining quantity. Errors: apperrors.ErrNotFound (no asset),
	// apperrors.ErrValidation (stored quantity is not numeric),
	// apperrors.ErrInsufficientInventory (nothing left).
	DecrementAvailableQuantity(ctx context.Context, assetID string) (int, error)

	// IncrementAvailableQuantity puts one unit back and returns the new quantity.
	IncrementAvailableQuantity(ctx context.Context, assetID string) (int, error)
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	AssetInventory
}
