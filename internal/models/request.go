package models

import "time"

// Request is the asset_requests table row.
type Request struct {
	RequestID      string     `db:"request_id"`
	AssetID        string     `db:"asset_id"`
	AssetName      string     `db:"asset_name"`
	AssetType      string     `db:"asset_type"`
	RequesterEmail string     `db:"requester_email"`
	RequesterName  string     `db:"requester_name"`
	HREmail        string     `db:"hr_email"`
	CompanyName    string     `db:"company_name"`
	AdditionalNote string     `db:"additional_note"`
	RequestStatus  string     `db:"request_status"`
	RequestDate    time.Time  `db:"request_date"`
	ApprovalDate   *time.Time `db:"approval_date"` // Nullable
	Note           string     `db:"note"`
}
