package chain

import (
	"context"
	"errors"
	"fmt"

	keyringstore "github.com/bnema/authflow-cli/internal/adapters/session/keyring"
	tomlstore "github.com/bnema/authflow-cli/internal/adapters/session/toml"
	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/bnema/authflow-cli/internal/ports"
	"github.com/spf13/viper"
)

// Store layers two session backends. Reads prefer the primary but consult
// the fallback when the primary misses, so records written while the
// primary backend was unavailable stay reachable. Deletes clear both
// backends so no stale copy can resurface after logout.
type Store struct {
	primary  ports.SessionStore
	fallback ports.SessionStore
}

var _ ports.SessionStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary session store is nil")
	errNilFallbackStore = errors.New("fallback session store is nil")
)

func NewStore(primary ports.SessionStore, fallback ports.SessionStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SessionStore, fallback ports.SessionStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewKeyringFirstWithTomlFallback(service string, cfg *viper.Viper) (*Store, error) {
	fallback, err := tomlstore.NewStore(cfg)
	if err != nil {
		return nil, err
	}

	return NewStoreChecked(keyringstore.NewStore(service), fallback)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	primaryMissed := errors.Is(err, domain.ErrKeyNotFound)
	fallbackMissed := errors.Is(fallbackErr, domain.ErrKeyNotFound)
	switch {
	case primaryMissed && fallbackMissed:
		return "", domain.ErrKeyNotFound
	case primaryMissed:
		return "", fmt.Errorf("fallback backend get failed: %w", fallbackErr)
	case fallbackMissed:
		return "", fmt.Errorf("primary backend get failed: %w", err)
	default:
		return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
	}
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err == nil && fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback backend delete failed: %w", fallbackErr)
	case fallbackErr == nil:
		return fmt.Errorf("primary backend delete failed: %w", err)
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
