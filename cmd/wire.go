package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	statusadapter "github.com/bnema/authflow-cli/internal/adapters/render/status"
	chainstore "github.com/bnema/authflow-cli/internal/adapters/session/chain"
	keyringstore "github.com/bnema/authflow-cli/internal/adapters/session/keyring"
	passstore "github.com/bnema/authflow-cli/internal/adapters/session/pass"
	tomlstore "github.com/bnema/authflow-cli/internal/adapters/session/toml"
	"github.com/bnema/authflow-cli/internal/application"
	"github.com/bnema/authflow-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	service        *application.Service
	sessionStore   ports.SessionStore
	backend        string
	statusRenderer func(application.SessionStatus) (string, error)
	login          loginConfig
	httpClient     *http.Client
	now            func() time.Time
}

type loginConfig struct {
	Issuer     string
	ClientID   string
	Scope      string
	ListenAddr string
	Timeout    time.Duration
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{
		statusRenderer: statusadapter.Render,
		login: loginConfig{
			Issuer:     envOrDefault("AF_ISSUER", cfg.GetString("login.issuer")),
			ClientID:   envOrDefault("AF_CLIENT_ID", cfg.GetString("login.client_id")),
			Scope:      envOrDefault("AF_SCOPE", cfg.GetString("login.scope")),
			ListenAddr: envOrDefault("AF_LISTEN", cfg.GetString("login.listen")),
			Timeout:    5 * time.Minute,
		},
		httpClient: http.DefaultClient,
		now:        time.Now,
	}

	backend := envOrDefault("AF_SESSION_BACKEND", cfg.GetString("session.backend"))
	if err := a.useSessionBackend(backend); err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	return a, nil
}

// useSessionBackend swaps the session store and the service built on it.
func (a *app) useSessionBackend(backend string) error {
	store, err := wireSessionStore(backend)
	if err != nil {
		return err
	}

	a.sessionStore = store
	a.service = application.NewService(store, ports.SystemClock{})
	a.backend = backend
	return nil
}

func wireSessionStore(backend string) (ports.SessionStore, error) {
	switch backend {
	case "", "auto":
		return chainstore.NewKeyringFirstWithTomlFallback("", viper.New())
	case "toml":
		return tomlstore.NewStore(viper.New())
	case "keyring":
		return keyringstore.NewStore(""), nil
	case "pass":
		return passstore.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q (valid: auto, toml, keyring, pass)", backend)
	}
}

// loadConfig reads ~/.authflow/config.toml; a missing file leaves defaults.
func loadConfig() (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.AddConfigPath(filepath.Join(home, ".authflow"))

	cfg.SetDefault("session.backend", "auto")
	cfg.SetDefault("login.scope", "openid profile email")
	cfg.SetDefault("login.listen", "127.0.0.1:8765")

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
