package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/bnema/authflow-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	sessionPathKey    = "session.path"
	sessionFileMode   = 0o600
	sessionDirMode    = 0o700
	sessionConfigDir  = ".authflow"
	sessionConfigFile = "session.toml"
	tempFilePattern   = ".session-*.toml.tmp"
)

type Store struct {
	sessionPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, sessionConfigDir, sessionConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, sessionConfigDir))
	cfg.SetDefault(sessionPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	sessionPath := cfg.GetString(sessionPathKey)
	if sessionPath == "" {
		return nil, errors.New("session path is empty")
	}
	sessionPath, err = normalizeSessionPath(sessionPath)
	if err != nil {
		return nil, err
	}

	return &Store{sessionPath: sessionPath, mu: lockForPath(sessionPath)}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	for _, entry := range file.Entries {
		if entry.Key == key {
			return entry.Value, nil
		}
	}

	return "", domain.ErrKeyNotFound
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	updated := false
	for i := range file.Entries {
		if file.Entries[i].Key == key {
			file.Entries[i].Value = value
			updated = true
			break
		}
	}

	if !updated {
		file.Entries = append(file.Entries, entrySchema{Key: key, Value: value})
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeSchema(file)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	kept := file.Entries[:0]
	removed := false
	for _, entry := range file.Entries {
		if entry.Key == key {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}

	// Deleting an absent key succeeds without touching the file.
	if !removed {
		return nil
	}

	file.Entries = kept
	return s.writeSchema(file)
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeSessionPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve session path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.sessionPath), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.sessionPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, s.sessionPath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.sessionPath, sessionFileMode); err != nil {
		return fmt.Errorf("chmod session file: %w", err)
	}

	return nil
}
