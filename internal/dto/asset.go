package dto

import "github.com/SscSPs/asset_management_app/internal/core/domain"

// CreateAssetRequest defines the data needed to add an inventory line.
type CreateAssetRequest struct {
	ProductName       string             `json:"productName" binding:"required"`
	ProductType       domain.ProductType `json:"productType" binding:"required,producttype"`
	AvailableQuantity *int               `json:"availableQuantity" binding:"required,gte=0"`
	HREmail           string             `json:"hrEmail" binding:"omitempty,email"` // Defaults to the caller
	CompanyName       string             `json:"companyName"`
}

// ListAssetsParams defines query parameters for the asset list.
type ListAssetsParams struct {
	ListParams
	HREmail string `form:"hrEmail"`
	Search  string `form:"search"`
}
