package domain

import "time"

// AssignmentStatus tracks whether the employee still holds the asset.
type AssignmentStatus string

const (
	AssignmentAssigned AssignmentStatus = "assigned"
	AssignmentReturned AssignmentStatus = "returned"
)

// AssignedAsset records one hand-over of an asset to an employee. Append-only
// apart from the return transition.
type AssignedAsset struct {
	AssignmentID  string           `json:"assignmentId"`
	RequestID     string           `json:"requestId,omitempty"`
	EmployeeEmail string           `json:"employeeEmail"`
	EmployeeName  string           `json:"employeeName,omitempty"`
	AssetID       string           `json:"assetId"`
	AssetName     string           `json:"assetName,omitempty"`
	AssetType     ProductType      `json:"assetType,omitempty"`
	HREmail       string           `json:"hrEmail,omitempty"`
	CompanyName   string           `json:"companyName,omitempty"`
	AssignedDate  time.Time        `json:"assignedDate"`
	Status        AssignmentStatus `json:"status"`
	ReturnDate    *time.Time       `json:"returnDate"`
}
