package httpform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/authflow-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Poster submits form-encoded requests and hands the raw response back.
// HTTP status interpretation belongs to the caller.
type Poster struct {
	client *http.Client
}

var _ ports.FormPoster = (*Poster)(nil)

func NewPoster(client *http.Client) *Poster {
	if client == nil {
		client = http.DefaultClient
	}

	return &Poster{client: client}
}

func (p *Poster) PostForm(ctx context.Context, endpoint string, form url.Values) (ports.FormResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return ports.FormResult{}, fmt.Errorf("create form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return ports.FormResult{}, fmt.Errorf("post form: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return ports.FormResult{}, fmt.Errorf("read form response: %w", err)
	}

	return ports.FormResult{StatusCode: resp.StatusCode, Body: body}, nil
}
