package services

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// AuthSvcFacade decides what a verified caller may do.
type AuthSvcFacade interface {
	// AuthorizeRole fails with apperrors.ErrForbidden unless the stored user
	// exists and holds role.
	AuthorizeRole(ctx context.Context, email string, role domain.UserRole) error
}
