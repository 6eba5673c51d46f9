package application

// SessionStatus is the read model behind `af status`. Token material is
// masked before it gets here; the raw record never leaves the service except
// through ExportToken.
type SessionStatus struct {
	Authenticated   bool      `json:"authenticated"`
	AccessToken     string    `json:"accessToken,omitempty"`
	ExpiresIn       int64     `json:"expiresIn,omitempty"`
	HasIDToken      bool      `json:"hasIdToken"`
	HasRefreshToken bool      `json:"hasRefreshToken"`
	Identity        *Identity `json:"identity,omitempty"`
	IdentityExpired bool      `json:"identityExpired,omitempty"`
	PendingFlow     bool      `json:"pendingFlow"`
}

const maskVisibleChars = 8

func maskToken(token string) string {
	if len(token) <= maskVisibleChars {
		return token
	}

	return token[:maskVisibleChars] + "..."
}
