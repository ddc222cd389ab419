package domain

import "time"

// RequestStatus is the lifecycle state of an asset request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// PendingRequestNote is stamped on every new request.
const PendingRequestNote = "Please wait ,HR will approve soon"

// IsTerminal reports whether the status can no longer change.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// Request is an employee's ask for one unit of an asset.
// Status moves only from pending to approved or rejected.
type Request struct {
	RequestID      string        `json:"requestId"`
	AssetID        string        `json:"assetId"`
	AssetName      string        `json:"assetName,omitempty"`
	AssetType      ProductType   `json:"assetType,omitempty"`
	RequesterEmail string        `json:"requesterEmail"`
	RequesterName  string        `json:"requesterName,omitempty"`
	HREmail        string        `json:"hrEmail,omitempty"`
	CompanyName    string        `json:"companyName,omitempty"`
	AdditionalNote string        `json:"additionalNote,omitempty"`
	RequestStatus  RequestStatus `json:"requestStatus"`
	RequestDate    time.Time     `json:"requestDate"`
	ApprovalDate   *time.Time    `json:"approvalDate"`
	Note           string        `json:"note"`
}

// RequestFilter narrows request listings.
type RequestFilter struct {
	HREmail        string
	RequesterEmail string
	Status         RequestStatus
}

// AssetQuantity reports an asset's stock after a decision moved it.
type AssetQuantity struct {
	AssetID           string `json:"assetId"`
	AvailableQuantity int    `json:"availableQuantity"`
}

// RequestDecision is the outcome of approving or rejecting a request.
// Asset and Assignment are set only for approvals.
type RequestDecision struct {
	Request            Request
	Asset              *AssetQuantity
	Assignment         *AssignedAsset
	AffiliationCreated bool
}
