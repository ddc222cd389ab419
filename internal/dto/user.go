package dto

import (
	"time"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Name        string          `json:"name" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Role        domain.UserRole `json:"role" binding:"omitempty,userrole"` // Defaults to employee
	CompanyName string          `json:"companyName"`
	CompanyLogo string          `json:"companyLogo"`
	DateOfBirth *time.Time      `json:"dateOfBirth"`
}

// UserRoleResponse answers the role lookup. Role is empty for unknown users.
type UserRoleResponse struct {
	Role string `json:"role"`
}
