package gateways

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// IdentityVerifier turns a bearer credential into a verified identity.
// Any failure is reported as apperrors.ErrUnauthorized.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.Identity, error)
}
