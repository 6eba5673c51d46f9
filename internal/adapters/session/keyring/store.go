package keyring

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/bnema/authflow-cli/internal/ports"
	"github.com/zalando/go-keyring"
)

const defaultService = "authflow-cli"

// Store keeps session records in the OS credential manager. Records are
// namespaced by service so other tools on the same keyring stay untouched.
type Store struct {
	service string
	set     func(service, key, value string) error
	get     func(service, key string) (string, error)
	del     func(service, key string) error
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(service string) *Store {
	if service == "" {
		service = defaultService
	}

	return &Store{
		service: service,
		set:     keyring.Set,
		get:     keyring.Get,
		del:     keyring.Delete,
	}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.set(s.service, key, value); err != nil {
		return fmt.Errorf("keyring put %q: %w", key, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, err := s.get(s.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("keyring get %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.del(s.service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("keyring delete %q: %w", key, err)
	}

	return nil
}
