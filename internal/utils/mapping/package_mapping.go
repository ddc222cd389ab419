package mapping

import (
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/models"
)

// ToDomainPackage converts a model Package to a domain Package
func ToDomainPackage(m models.Package) domain.Package {
	return domain.Package{
		PackageID:     m.PackageID,
		Name:          m.Name,
		EmployeeLimit: m.EmployeeLimit,
		Price:         m.Price,
	}
}

// ToDomainPackageSlice converts a slice of model Packages
func ToDomainPackageSlice(ms []models.Package) []domain.Package {
	ds := make([]domain.Package, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPackage(m)
	}
	return ds
}
