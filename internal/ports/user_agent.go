package ports

import "context"

// UserAgent is the browsing context the flow drives: where it currently is,
// how to send it somewhere else, and how to rewrite the visible address
// without navigating.
type UserAgent interface {
	// Location returns the full current URL, query string included.
	Location(ctx context.Context) (string, error)
	// Navigate unconditionally transfers the browsing context to rawURL.
	Navigate(ctx context.Context, rawURL string) error
	// ReplaceLocation rewrites the visible address without a navigation.
	ReplaceLocation(ctx context.Context, rawURL string) error
}
