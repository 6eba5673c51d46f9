package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tomlstore "github.com/bnema/authflow-cli/internal/adapters/session/toml"
	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/bnema/authflow-cli/internal/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServiceStatusSignedOut(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	store.EXPECT().Get(mockAnyContext(), "authflow/authentication").Return("", domain.ErrKeyNotFound)
	store.EXPECT().Get(mockAnyContext(), "authflow/flow_state").Return("", domain.ErrKeyNotFound)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Authenticated)
	assert.False(t, status.PendingFlow)
	assert.Empty(t, status.AccessToken)
	assert.Nil(t, status.Identity)
}

func TestServiceStatusAuthenticatedMasksTokenAndExtractsIdentity(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	idToken := signedIDToken(t, jwt.MapClaims{
		"sub":   "user-42",
		"email": "user@example.com",
		"iss":   "https://auth.example.com",
		"exp":   now.Add(time.Hour).Unix(),
	})
	encoded, err := encodeAuthentication(domain.Authentication{
		AccessToken: "secret-access-token-material",
		ExpiresIn:   3600,
		IDToken:     idToken,
	})
	require.NoError(t, err)

	store.EXPECT().Get(mockAnyContext(), "authflow/authentication").Return(encoded, nil)
	store.EXPECT().Get(mockAnyContext(), "authflow/flow_state").Return("", domain.ErrKeyNotFound)
	clock.EXPECT().Now().Return(now).Once()

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Authenticated)
	assert.Equal(t, "secret-a...", status.AccessToken)
	assert.Equal(t, int64(3600), status.ExpiresIn)
	assert.True(t, status.HasIDToken)
	assert.False(t, status.HasRefreshToken)
	require.NotNil(t, status.Identity)
	assert.Equal(t, "user-42", status.Identity.Subject)
	assert.Equal(t, "user@example.com", status.Identity.Email)
	assert.Equal(t, "https://auth.example.com", status.Identity.Issuer)
	assert.False(t, status.IdentityExpired)
}

func TestServiceStatusReportsExpiredIdentity(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	idToken := signedIDToken(t, jwt.MapClaims{
		"sub": "user-42",
		"exp": now.Add(-time.Minute).Unix(),
	})
	encoded, err := encodeAuthentication(domain.Authentication{
		AccessToken: "secret-access-token-material",
		ExpiresIn:   3600,
		IDToken:     idToken,
	})
	require.NoError(t, err)

	store.EXPECT().Get(mockAnyContext(), "authflow/authentication").Return(encoded, nil)
	store.EXPECT().Get(mockAnyContext(), "authflow/flow_state").Return("", domain.ErrKeyNotFound)
	clock.EXPECT().Now().Return(now).Once()

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Authenticated)
	assert.True(t, status.IdentityExpired)
}

func TestServiceStatusToleratesUnparseableIDToken(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	encoded, err := encodeAuthentication(domain.Authentication{
		AccessToken: "secret-access-token-material",
		ExpiresIn:   3600,
		IDToken:     "not-a-jwt",
	})
	require.NoError(t, err)

	store.EXPECT().Get(mockAnyContext(), "authflow/authentication").Return(encoded, nil)
	store.EXPECT().Get(mockAnyContext(), "authflow/flow_state").Return("", domain.ErrKeyNotFound)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Authenticated)
	assert.True(t, status.HasIDToken)
	assert.Nil(t, status.Identity)
	assert.False(t, status.IdentityExpired)
}

func TestServiceStatusReportsPendingFlow(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	encoded, err := encodeFlowState(domain.FlowState{
		ThisURI: "https://app.example.com/home",
		Nonce:   "N",
		State:   "S",
		Pkce:    domain.Pkce{Verifier: "V", Challenge: "C"},
	})
	require.NoError(t, err)

	store.EXPECT().Get(mockAnyContext(), "authflow/authentication").Return("", domain.ErrKeyNotFound)
	store.EXPECT().Get(mockAnyContext(), "authflow/flow_state").Return(encoded, nil)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Authenticated)
	assert.True(t, status.PendingFlow)
}

func TestServiceStatusReturnsStoreError(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	readErr := errors.New("backend unavailable")
	store.EXPECT().Get(mockAnyContext(), "authflow/authentication").Return("", readErr)

	_, err := service.Status(context.Background())
	require.ErrorIs(t, err, readErr)
}

func TestServiceLogoutClearsAuthentication(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	store.EXPECT().Delete(mockAnyContext(), "authflow/authentication").Return(nil)

	err := service.Logout(context.Background(), LogoutOptions{})
	require.NoError(t, err)
}

func TestServiceLogoutAlsoClearsPendingFlowWhenAsked(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	store.EXPECT().Delete(mockAnyContext(), "authflow/authentication").Return(nil)
	store.EXPECT().Delete(mockAnyContext(), "authflow/flow_state").Return(nil)

	err := service.Logout(context.Background(), LogoutOptions{ClearPending: true})
	require.NoError(t, err)
}

func TestServiceLogoutReturnsErrorWhenDeleteFails(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	deleteErr := errors.New("delete failed")
	store.EXPECT().Delete(mockAnyContext(), "authflow/authentication").Return(deleteErr)

	err := service.Logout(context.Background(), LogoutOptions{})
	require.ErrorIs(t, err, deleteErr)
}

func TestServiceExportTokenReturnsPersistedRecord(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	store.EXPECT().Get(mockAnyContext(), "authflow/authentication").
		Return(`{"accessToken":"T","expiresIn":3600,"refreshToken":"R"}`, nil)

	auth, err := service.ExportToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Authentication{AccessToken: "T", ExpiresIn: 3600, RefreshToken: "R"}, auth)
}

func TestServiceExportTokenFailsWhenSignedOut(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, clock)

	store.EXPECT().Get(mockAnyContext(), "authflow/authentication").Return("", domain.ErrKeyNotFound)

	_, err := service.ExportToken(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestServiceSessionPersistsAcrossServiceInstances(t *testing.T) {
	t.Parallel()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	cfg := viper.New()
	cfg.Set("session.path", sessionPath)

	store, err := tomlstore.NewStore(cfg)
	require.NoError(t, err)

	encoded, err := encodeAuthentication(domain.Authentication{AccessToken: "T", ExpiresIn: 3600})
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), "authflow/authentication", encoded))

	serviceA := NewService(store, nil)
	status, err := serviceA.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Authenticated)

	reopened, err := tomlstore.NewStore(cfg)
	require.NoError(t, err)

	serviceB := NewService(reopened, nil)
	status, err = serviceB.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Authenticated)

	require.NoError(t, serviceB.Logout(context.Background(), LogoutOptions{}))

	status, err = serviceA.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Authenticated)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
