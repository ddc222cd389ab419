package models

import "time"

// Asset is the assets table row.
type Asset struct {
	AssetID           string    `db:"asset_id"`
	ProductName       string    `db:"product_name"`
	ProductType       string    `db:"product_type"`
	AvailableQuantity int       `db:"available_quantity"` // CHECK >= 0
	HREmail           string    `db:"hr_email"`
	CompanyName       string    `db:"company_name"`
	DataAdded         time.Time `db:"data_added"`
}
