// Package identity verifies bearer credentials issued by an external identity provider.
package identity

import (
	"context"
	"fmt"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token body the JWT verifier accepts.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier builds a verifier. A non-empty issuer must match the iss claim.
func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &JWTVerifier{secret: []byte(secret), parser: jwt.NewParser(opts...)}
}

var _ gateways.IdentityVerifier = (*JWTVerifier)(nil)

func (v *JWTVerifier) VerifyToken(_ context.Context, token string) (*domain.Identity, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	email := domain.NormalizeEmail(claims.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: token has no email claim", apperrors.ErrUnauthorized)
	}
	return &domain.Identity{Email: email, Subject: claims.Subject, Name: claims.Name}, nil
}

// IssueToken signs claims for email. Used by the CLI and tests to mint credentials.
func IssueToken(secret, issuer, email string, claims jwt.RegisteredClaims) (string, error) {
	if issuer != "" {
		claims.Issuer = issuer
	}
	if claims.Subject == "" {
		claims.Subject = email
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: email, RegisteredClaims: claims})
	return token.SignedString([]byte(secret))
}
