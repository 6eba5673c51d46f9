package application

import (
	"testing"
	"time"

	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIDToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	return token
}

func TestIdentityFromTokenExtractsDisplayClaims(t *testing.T) {
	expiry := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	idToken := signedIDToken(t, jwt.MapClaims{
		"sub":   "user-42",
		"email": "dev@example.com",
		"iss":   "https://auth.example.com",
		"exp":   expiry.Unix(),
	})

	identity, err := IdentityFromToken(idToken)
	require.NoError(t, err)

	assert.Equal(t, "user-42", identity.Subject)
	assert.Equal(t, "dev@example.com", identity.Email)
	assert.Equal(t, "https://auth.example.com", identity.Issuer)
	assert.True(t, identity.ExpiresAt.Equal(expiry))
}

func TestIdentityFromTokenToleratesMissingOptionalClaims(t *testing.T) {
	idToken := signedIDToken(t, jwt.MapClaims{"sub": "user-42"})

	identity, err := IdentityFromToken(idToken)
	require.NoError(t, err)

	assert.Equal(t, "user-42", identity.Subject)
	assert.Empty(t, identity.Email)
	assert.True(t, identity.ExpiresAt.IsZero())
}

func TestIdentityFromTokenRejectsGarbage(t *testing.T) {
	_, err := IdentityFromToken("not-a-jwt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse id token")
}

func TestVerifyNonce(t *testing.T) {
	tests := []struct {
		name     string
		claims   jwt.MapClaims
		expected string
		wantErr  error
	}{
		{
			name:     "matching nonce passes",
			claims:   jwt.MapClaims{"nonce": "n-1"},
			expected: "n-1",
		},
		{
			name:     "mismatched nonce fails closed",
			claims:   jwt.MapClaims{"nonce": "evil"},
			expected: "n-1",
			wantErr:  domain.ErrNonceMismatch,
		},
		{
			name:     "non-string nonce claim fails closed",
			claims:   jwt.MapClaims{"nonce": 12345},
			expected: "n-1",
			wantErr:  domain.ErrNonceMismatch,
		},
		{
			name:     "token without nonce claim passes",
			claims:   jwt.MapClaims{"sub": "user-42"},
			expected: "n-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifyNonce(signedIDToken(t, tt.claims), tt.expected)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVerifyNonceRejectsUnparseableToken(t *testing.T) {
	err := verifyNonce("garbage", "n-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse id token")
}
