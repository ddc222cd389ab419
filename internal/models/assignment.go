package models

import "time"

// AssignedAsset is the assigned_assets table row.
type AssignedAsset struct {
	AssignmentID  string     `db:"assignment_id"`
	RequestID     string     `db:"request_id"`
	EmployeeEmail string     `db:"employee_email"`
	EmployeeName  string     `db:"employee_name"`
	AssetID       string     `db:"asset_id"`
	AssetName     string     `db:"asset_name"`
	AssetType     string     `db:"asset_type"`
	HREmail       string     `db:"hr_email"`
	CompanyName   string     `db:"company_name"`
	AssignedDate  time.Time  `db:"assigned_date"`
	Status        string     `db:"status"`
	ReturnDate    *time.Time `db:"return_date"` // Nullable
}
