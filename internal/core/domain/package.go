package domain

import "github.com/shopspring/decimal"

// Package is a purchasable subscription tier. The catalog is read-only.
type Package struct {
	PackageID     string          `json:"packageId"`
	Name          string          `json:"name"`
	EmployeeLimit int             `json:"employeeLimit"`
	Price         decimal.Decimal `json:"price"`
}

// DefaultCatalog is the seeded package catalog. The postgres seed migration
// inserts the same rows.
func DefaultCatalog() []Package {
	return []Package{
		{PackageID: "5d6e1b52-3c1f-4b5e-9a53-1f0a8e2d7c01", Name: "Basic", EmployeeLimit: 5, Price: decimal.NewFromInt(5)},
		{PackageID: "5d6e1b52-3c1f-4b5e-9a53-1f0a8e2d7c02", Name: "Standard", EmployeeLimit: 10, Price: decimal.NewFromInt(8)},
		{PackageID: "5d6e1b52-3c1f-4b5e-9a53-1f0a8e2d7c03", Name: "Premium", EmployeeLimit: 20, Price: decimal.NewFromInt(15)},
	}
}
