package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserReader
}

// NewAuthService creates the role authorizer.
func NewAuthService(userRepo portsrepo.UserReader) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// AuthorizeRole treats an unknown user exactly like a user with the wrong role.
func (s *authService) AuthorizeRole(ctx context.Context, email string, role domain.UserRole) error {
	user, err := s.userRepo.FindUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Role check for unknown user", slog.String("required_role", string(role)))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to load user for role check")
		return fmt.Errorf("failed to authorize role: %w", err)
	}
	if user.Role != role {
		return apperrors.ErrForbidden
	}
	return nil
}
