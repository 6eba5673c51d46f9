package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/bnema/authflow-cli/internal/ports"
)

// Service is the read/maintenance side of the session: status queries,
// logout, token export. Flow driving lives on FlowService.
type Service struct {
	store ports.SessionStore
	clock ports.Clock
}

func NewService(store ports.SessionStore, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{store: store, clock: clock}
}

func (s *Service) Status(ctx context.Context) (SessionStatus, error) {
	status := SessionStatus{}

	stored, err := s.store.Get(ctx, authenticationKey)
	switch {
	case err == nil:
		auth, decodeErr := decodeAuthentication(stored)
		if decodeErr != nil {
			return SessionStatus{}, decodeErr
		}
		status.Authenticated = true
		status.AccessToken = maskToken(auth.AccessToken)
		status.ExpiresIn = auth.ExpiresIn
		status.HasIDToken = auth.IDToken != ""
		status.HasRefreshToken = auth.RefreshToken != ""
		if auth.IDToken != "" {
			// Display degrades to tokens-only when the ID token does not
			// parse; a broken identity claim set is not a broken session.
			if identity, idErr := IdentityFromToken(auth.IDToken); idErr == nil {
				status.Identity = &identity
				if !identity.ExpiresAt.IsZero() {
					status.IdentityExpired = s.clock.Now().After(identity.ExpiresAt)
				}
			}
		}
	case !errors.Is(err, domain.ErrKeyNotFound):
		return SessionStatus{}, fmt.Errorf("read authentication record: %w", err)
	}

	_, err = s.store.Get(ctx, flowStateKey)
	switch {
	case err == nil:
		status.PendingFlow = true
	case !errors.Is(err, domain.ErrKeyNotFound):
		return SessionStatus{}, fmt.Errorf("read flow state record: %w", err)
	}

	return status, nil
}

// Logout clears the completed login. Deleting absent records succeeds, so
// logging out twice is fine.
func (s *Service) Logout(ctx context.Context, opts LogoutOptions) error {
	if err := s.store.Delete(ctx, authenticationKey); err != nil {
		return fmt.Errorf("clear authentication record: %w", err)
	}
	if opts.ClearPending {
		if err := s.store.Delete(ctx, flowStateKey); err != nil {
			return fmt.Errorf("clear flow state record: %w", err)
		}
	}

	return nil
}

// ExportToken returns the raw persisted login for the token command.
func (s *Service) ExportToken(ctx context.Context) (domain.Authentication, error) {
	stored, err := s.store.Get(ctx, authenticationKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return domain.Authentication{}, domain.ErrNotAuthenticated
		}
		return domain.Authentication{}, fmt.Errorf("read authentication record: %w", err)
	}

	return decodeAuthentication(stored)
}
