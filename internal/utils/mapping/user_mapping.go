package mapping

import (
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		Name:         d.Name,
		Role:         string(d.Role),
		CompanyName:  d.CompanyName,
		CompanyLogo:  d.CompanyLogo,
		DateOfBirth:  d.DateOfBirth,
		PackageLimit: d.PackageLimit,
		Subscription: d.Subscription,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		Name:         m.Name,
		Role:         domain.UserRole(m.Role),
		CompanyName:  m.CompanyName,
		CompanyLogo:  m.CompanyLogo,
		DateOfBirth:  m.DateOfBirth,
		PackageLimit: m.PackageLimit,
		Subscription: m.Subscription,
		CreatedAt:    m.CreatedAt,
	}
}
