package identity

import (
	"context"
	"fmt"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	"google.golang.org/api/idtoken"
)

// GoogleVerifier validates Google-issued ID tokens for one OAuth client.
type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

var _ gateways.IdentityVerifier = (*GoogleVerifier)(nil)

func (v *GoogleVerifier) VerifyToken(ctx context.Context, token string) (*domain.Identity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: token has no email claim", apperrors.ErrUnauthorized)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, fmt.Errorf("%w: email is not verified", apperrors.ErrUnauthorized)
	}
	name, _ := payload.Claims["name"].(string)
	return &domain.Identity{Email: domain.NormalizeEmail(email), Subject: payload.Subject, Name: name}, nil
}
