// Package fetch provides the read-only resource sources the content store
// loads from: an HTTP client for deployed data endpoints and a filesystem
// source for bundled seed data. Failures are tagged so callers can degrade
// to an empty collection instead of aborting a load.
package fetch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/deltahub/go-hub/pkg/interfaces"
)

const fetchFailedCode = "FETCH_FAILED"

const defaultTimeout = 10 * time.Second

// wrapFetch tags transport failures with the external category.
func wrapFetch(err error, path string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "fetch "+path).
		WithTextCode(fetchFailedCode)
}

// IsFetchError reports whether err is a resource fetch failure.
func IsFetchError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryExternal)
}

// HTTPSource fetches resources relative to a base URL.
type HTTPSource struct {
	base   string
	client *http.Client
}

// HTTPOption mutates the HTTP source configuration.
type HTTPOption func(*HTTPSource)

// WithClient overrides the HTTP client. Passing nil keeps the default.
func WithClient(client *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if client != nil {
			s.client = client
		}
	}
}

// NewHTTPSource constructs a source rooted at base. The default client
// carries a 10 second timeout; none of the fetches are retried.
func NewHTTPSource(base string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch performs a GET against base joined with path. Non-2xx responses are
// fetch failures.
func (s *HTTPSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := s.base + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wrapFetch(err, path)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, wrapFetch(err, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, wrapFetch(fmt.Errorf("unexpected status %d", resp.StatusCode), path)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapFetch(err, path)
	}
	return data, nil
}

// FSSource fetches resources from a filesystem, used for bundled seed data
// and tests.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource constructs a filesystem-backed source.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Fetch reads the file at path. Missing files are fetch failures.
func (s *FSSource) Fetch(_ context.Context, path string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, wrapFetch(err, path)
	}
	return data, nil
}

var (
	_ interfaces.Source = (*HTTPSource)(nil)
	_ interfaces.Source = (*FSSource)(nil)
)
