package ports

import (
	"context"
	"net/url"
)

// FormResult is the raw outcome of a form POST. Non-2xx statuses are results,
// not errors: FormPoster errors are reserved for transport failures.
type FormResult struct {
	StatusCode int
	Body       []byte
}

// FormPoster sends an application/x-www-form-urlencoded POST.
type FormPoster interface {
	PostForm(ctx context.Context, endpoint string, form url.Values) (FormResult, error)
}
