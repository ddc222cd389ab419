package mapping

import (
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/models"
)

// ToModelAssignedAsset converts a domain AssignedAsset to a model AssignedAsset
func ToModelAssignedAsset(d domain.AssignedAsset) models.AssignedAsset {
	return models.AssignedAsset{
		AssignmentID:  d.AssignmentID,
		RequestID:     d.RequestID,
		EmployeeEmail: d.EmployeeEmail,
		EmployeeName:  d.EmployeeName,
		AssetID:       d.AssetID,
		AssetName:     d.AssetName,
		AssetType:     string(d.AssetType),
		HREmail:       d.HREmail,
		CompanyName:   d.CompanyName,
		AssignedDate:  d.AssignedDate,
		Status:        string(d.Status),
		ReturnDate:    d.ReturnDate,
	}
}

// ToDomainAssignedAsset converts a model AssignedAsset to a domain AssignedAsset
func ToDomainAssignedAsset(m models.AssignedAsset) domain.AssignedAsset {
	return domain.AssignedAsset{
		AssignmentID:  m.AssignmentID,
		RequestID:     m.RequestID,
		EmployeeEmail: m.EmployeeEmail,
		EmployeeName:  m.EmployeeName,
		AssetID:       m.AssetID,
		AssetName:     m.AssetName,
		AssetType:     domain.ProductType(m.AssetType),
		HREmail:       m.HREmail,
		CompanyName:   m.CompanyName,
		AssignedDate:  m.AssignedDate,
		Status:        domain.AssignmentStatus(m.Status),
		ReturnDate:    m.ReturnDate,
	}
}

// ToDomainAssignedAssetSlice converts a slice of model AssignedAssets
func ToDomainAssignedAssetSlice(ms []models.AssignedAsset) []domain.AssignedAsset {
	ds := make([]domain.AssignedAsset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssignedAsset(m)
	}
	return ds
}
