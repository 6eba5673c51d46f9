package browser

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/authflow-cli/internal/ports"
	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
)

// OpenFunc hands a URL to the user's browser. Swapping it out lets callers
// print the URL instead of opening a window.
type OpenFunc func(rawURL string) error

// Agent adapts the local browsing context. The tracked location plays the
// role of the current page URL; Navigate hands off to the system browser.
type Agent struct {
	location string
	open     OpenFunc
}

var _ ports.UserAgent = (*Agent)(nil)

func NewAgent(initialLocation string, open OpenFunc) *Agent {
	if open == nil {
		open = browser.OpenURL
	}

	return &Agent{location: initialLocation, open: open}
}

func (a *Agent) Location(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if a.location == "" {
		return "", errors.New("no current location")
	}

	return a.location, nil
}

func (a *Agent) Navigate(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log.WithField("url", rawURL).Debug("navigating browser")

	if err := a.open(rawURL); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	a.location = rawURL

	return nil
}

// ReplaceLocation rewrites the tracked location without touching the
// browser, the way history.replaceState rewrites a page URL.
func (a *Agent) ReplaceLocation(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.location = rawURL

	return nil
}

// SetReturned records the URL the provider redirected back to, as captured
// by the loopback server.
func (a *Agent) SetReturned(rawURL string) {
	a.location = rawURL
}
