package domain

import "time"

// ProductType tells whether an asset comes back after use.
type ProductType string

const (
	ProductReturnable    ProductType = "returnable"
	ProductNonReturnable ProductType = "non-returnable"
)

// Asset is an inventory line owned by an HR manager.
type Asset struct {
	AssetID           string      `json:"assetId"`
	ProductName       string      `json:"productName"` // Unique across the inventory
	ProductType       ProductType `json:"productType"`
	AvailableQuantity int         `json:"availableQuantity"` // Never negative
	HREmail           string      `json:"hrEmail,omitempty"`
	CompanyName       string      `json:"companyName,omitempty"`
	DataAdded         time.Time   `json:"dataAdded"`
}

// AssetFilter narrows asset listings.
type AssetFilter struct {
	HREmail string
	Search  string // Case-insensitive substring of ProductName
}
