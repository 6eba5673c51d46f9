package ports

import "context"

// SessionStore persists the session's key/value records across process runs.
// Get reports an absent key with an error satisfying
// errors.Is(err, domain.ErrKeyNotFound); Delete of an absent key succeeds.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
