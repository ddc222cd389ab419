package identity

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestJWTVerifier_ValidToken(t *testing.T) {
	token, err := IssueToken(testSecret, "asset-app", "hr@acme.com", jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	identity, err := NewJWTVerifier(testSecret, "asset-app").VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "hr@acme.com", identity.Email)
	assert.Equal(t, "hr@acme.com", identity.Subject)
}

func TestJWTVerifier_NormalizesEmail(t *testing.T) {
	token, err := IssueToken(testSecret, "", " HR@Acme.COM", jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	identity, err := NewJWTVerifier(testSecret, "").VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "hr@acme.com", identity.Email)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	expired, err := IssueToken(testSecret, "", "hr@acme.com", jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	require.NoError(t, err)
	wrongSecret, err := IssueToken("other", "", "hr@acme.com", jwt.RegisteredClaims{})
	require.NoError(t, err)
	wrongIssuer, err := IssueToken(testSecret, "someone-else", "hr@acme.com", jwt.RegisteredClaims{})
	require.NoError(t, err)
	noEmail, err := IssueToken(testSecret, "", "", jwt.RegisteredClaims{})
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "hr@acme.com"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]struct {
		token  string
		issuer string
	}{
		"expired":       {token: expired},
		"wrong secret":  {token: wrongSecret},
		"wrong issuer":  {token: wrongIssuer, issuer: "asset-app"},
		"missing email": {token: noEmail},
		"alg none":      {token: none},
		"garbage":       {token: "not-a-jwt"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewJWTVerifier(testSecret, tt.issuer).VerifyToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		})
	}
}
