package dto

import "github.com/SscSPs/asset_management_app/internal/core/domain"

// CreateRequestRequest is an employee's ask for an asset.
type CreateRequestRequest struct {
	AssetID        string             `json:"assetId" binding:"required"`
	AssetName      string             `json:"assetName"`
	AssetType      domain.ProductType `json:"assetType" binding:"omitempty,producttype"`
	RequesterEmail string             `json:"requesterEmail" binding:"omitempty,email"` // Defaults to the caller
	RequesterName  string             `json:"requesterName"`
	HREmail        string             `json:"hrEmail" binding:"omitempty,email"`
	CompanyName    string             `json:"companyName"`
	AdditionalNote string             `json:"additionalNote"`
}

// UpdateRequestStatusRequest carries an HR decision. The descriptive fields
// fill the assignment and affiliation records; missing ones fall back to the
// stored request.
type UpdateRequestStatusRequest struct {
	Status        domain.RequestStatus `json:"status" binding:"required,requeststatus"`
	AssetID       string               `json:"assetId"`
	EmployeeEmail string               `json:"employeeEmail" binding:"omitempty,email"`
	EmployeeName  string               `json:"employeeName"`
	AssetName     string               `json:"assetName"`
	AssetType     domain.ProductType   `json:"assetType" binding:"omitempty,producttype"`
	HREmail       string               `json:"hrEmail" binding:"omitempty,email"`
	CompanyName   string               `json:"companyName"`
	CompanyLogo   string               `json:"companyLogo"`
}

// ListRequestsParams defines query parameters for request listings.
type ListRequestsParams struct {
	ListParams
	Status domain.RequestStatus `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// RequestDecisionResponse is the single object returned by a decision.
type RequestDecisionResponse struct {
	Success            bool                  `json:"success"`
	Request            domain.Request        `json:"request"`
	Asset              *domain.AssetQuantity `json:"asset,omitempty"`
	Assignment         *domain.AssignedAsset `json:"assignment,omitempty"`
	AffiliationCreated bool                  `json:"affiliationCreated"`
}

// ToRequestDecisionResponse converts a domain.RequestDecision to its response DTO
func ToRequestDecisionResponse(d *domain.RequestDecision) RequestDecisionResponse {
	return RequestDecisionResponse{
		Success:            true,
		Request:            d.Request,
		Asset:              d.Asset,
		Assignment:         d.Assignment,
		AffiliationCreated: d.AffiliationCreated,
	}
}
