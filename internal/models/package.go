package models

import "github.com/shopspring/decimal"

// Package is the packages table row.
type Package struct {
	PackageID     string          `db:"package_id"`
	Name          string          `db:"name"`
	EmployeeLimit int             `db:"employee_limit"`
	Price         decimal.Decimal `db:"price"`
}
