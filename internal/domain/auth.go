package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Pkce is one verifier/challenge pair. The challenge is always the
// base64url (no padding) SHA-256 digest of the verifier's ASCII bytes.
type Pkce struct {
	Verifier  string `json:"verifier"`
	Challenge string `json:"challenge"`
}

// FlowState is one in-flight authorization attempt. It survives the redirect
// round-trip in the session store, so the process that resumes the flow never
// has to be the one that started it.
type FlowState struct {
	// ThisURI is the exact URL the user agent was on when the flow started;
	// it doubles as the redirect URI and is restored to the visible address
	// once the exchange completes.
	ThisURI string `json:"thisUri"`
	Nonce   string `json:"nonce"`
	State   string `json:"state"`
	Pkce    Pkce   `json:"pkce"`
}

// Authentication is a completed login as reported by the token endpoint.
// ExpiresIn is the lifetime in seconds as issued, not an absolute deadline.
type Authentication struct {
	AccessToken  string `json:"accessToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	IDToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// FlowParams identifies the authorization server and client. Immutable for
// the lifetime of a flow service.
type FlowParams struct {
	Issuer   string
	ClientID string
	Scope    string
}

func (p FlowParams) Validate() error {
	if p.Issuer == "" {
		return errors.New("issuer is required")
	}
	parsed, err := url.Parse(p.Issuer)
	if err != nil {
		return fmt.Errorf("parse issuer: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("issuer must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("issuer host is required")
	}
	if p.ClientID == "" {
		return errors.New("client id is required")
	}
	return nil
}

// NormalizedIssuer strips any trailing slash so endpoint paths can be
// appended verbatim.
func (p FlowParams) NormalizedIssuer() string {
	return strings.TrimRight(p.Issuer, "/")
}
