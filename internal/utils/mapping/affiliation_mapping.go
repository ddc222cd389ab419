package mapping

import (
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/models"
)

// ToModelAffiliation converts a domain Affiliation to a model Affiliation
func ToModelAffiliation(d domain.Affiliation) models.Affiliation {
	return models.Affiliation{
		AffiliationID:   d.AffiliationID,
		EmployeeEmail:   d.EmployeeEmail,
		EmployeeName:    d.EmployeeName,
		HREmail:         d.HREmail,
		CompanyName:     d.CompanyName,
		CompanyLogo:     d.CompanyLogo,
		AffiliationDate: d.AffiliationDate,
		Status:          d.Status,
	}
}

// ToDomainAffiliation converts a model Affiliation to a domain Affiliation
func ToDomainAffiliation(m models.Affiliation) domain.Affiliation {
	return domain.Affiliation{
		AffiliationID:   m.AffiliationID,
		EmployeeEmail:   m.EmployeeEmail,
		EmployeeName:    m.EmployeeName,
		HREmail:         m.HREmail,
		CompanyName:     m.CompanyName,
		CompanyLogo:     m.CompanyLogo,
		AffiliationDate: m.AffiliationDate,
		Status:          m.Status,
	}
}

// ToDomainAffiliationSlice converts a slice of model Affiliations
func ToDomainAffiliationSlice(ms []models.Affiliation) []domain.Affiliation {
	ds := make([]domain.Affiliation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAffiliation(m)
	}
	return ds
}
