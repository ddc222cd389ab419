package mapping

import (
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:           d.AssetID,
		ProductName:       d.ProductName,
		ProductType:       string(d.ProductType),
		AvailableQuantity: d.AvailableQuantity,
		HREmail:           d.HREmail,
		CompanyName:       d.CompanyName,
		DataAdded:         d.DataAdded,
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:           m.AssetID,
		ProductName:       m.ProductName,
		ProductType:       domain.ProductType(m.ProductType),
		AvailableQuantity: m.AvailableQuantity,
		HREmail:           m.HREmail,
		CompanyName:       m.CompanyName,
		DataAdded:         m.DataAdded,
	}
}

// ToDomainAssetSlice converts a slice of model Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}
