package application

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bnema/authflow-cli/internal/domain"
)

// Identity is the displayable subset of ID-token claims. Claims are decoded
// without signature verification: the token arrived over TLS from the issuer
// and this client holds no verification keys.
type Identity struct {
	Subject   string    `json:"subject,omitempty"`
	Email     string    `json:"email,omitempty"`
	Issuer    string    `json:"issuer,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func IdentityFromToken(idToken string) (Identity, error) {
	claims, err := unverifiedClaims(idToken)
	if err != nil {
		return Identity{}, fmt.Errorf("parse id token: %w", err)
	}

	identity := Identity{}
	if sub, ok := claims["sub"].(string); ok {
		identity.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if iss, ok := claims["iss"].(string); ok {
		identity.Issuer = iss
	}
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}

	return identity, nil
}

// verifyNonce fails closed when the ID token carries a nonce claim that does
// not match the one persisted at flow start; a claim of the wrong type counts
// as a mismatch. A token without the claim passes: not every provider echoes
// the nonce.
func verifyNonce(idToken, expected string) error {
	claims, err := unverifiedClaims(idToken)
	if err != nil {
		return fmt.Errorf("parse id token: %w", err)
	}

	raw, present := claims["nonce"]
	if !present {
		return nil
	}
	nonce, ok := raw.(string)
	if !ok || nonce != expected {
		return domain.ErrNonceMismatch
	}

	return nil
}

func unverifiedClaims(idToken string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return nil, err
	}

	return claims, nil
}
