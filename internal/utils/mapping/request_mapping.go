package mapping

import (
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/models"
)

// ToModelRequest converts a domain Request to a model Request
func ToModelRequest(d domain.Request) models.Request {
	return models.Request{
		RequestID:      d.RequestID,
		AssetID:        d.AssetID,
		AssetName:      d.AssetName,
		AssetType:      string(d.AssetType),
		RequesterEmail: d.RequesterEmail,
		RequesterName:  d.RequesterName,
		HREmail:        d.HREmail,
		CompanyName:    d.CompanyName,
		AdditionalNote: d.AdditionalNote,
		RequestStatus:  string(d.RequestStatus),
		RequestDate:    d.RequestDate,
		ApprovalDate:   d.ApprovalDate,
		Note:           d.Note,
	}
}

// ToDomainRequest converts a model Request to a domain Request
func ToDomainRequest(m models.Request) domain.Request {
	return domain.Request{
		RequestID:      m.RequestID,
		AssetID:        m.AssetID,
		AssetName:      m.AssetName,
		AssetType:      domain.ProductType(m.AssetType),
		RequesterEmail: m.RequesterEmail,
		RequesterName:  m.RequesterName,
		HREmail:        m.HREmail,
		CompanyName:    m.CompanyName,
		AdditionalNote: m.AdditionalNote,
		RequestStatus:  domain.RequestStatus(m.RequestStatus),
		RequestDate:    m.RequestDate,
		ApprovalDate:   m.ApprovalDate,
		Note:           m.Note,
	}
}

// ToDomainRequestSlice converts a slice of model Requests
func ToDomainRequestSlice(ms []models.Request) []domain.Request {
	ds := make([]domain.Request, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRequest(m)
	}
	return ds
}
