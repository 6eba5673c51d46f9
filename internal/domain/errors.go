package domain

import (
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound            = errors.New("session key not found")
	ErrMissingFlowState       = errors.New("no flow state for returned authorization code")
	ErrStateMismatch          = errors.New("state parameter mismatch")
	ErrNonceMismatch          = errors.New("nonce claim mismatch")
	ErrMalformedTokenResponse = errors.New("malformed token response")
	ErrNotAuthenticated       = errors.New("not authenticated")
)

// ProviderError carries an error the authorization server reported itself,
// either as error/error_description query parameters on the return leg or as
// an error body from the token endpoint.
type ProviderError struct {
	Category    string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("provider returned %q", e.Category)
	}
	return fmt.Sprintf("provider returned %q: %s", e.Category, e.Description)
}
