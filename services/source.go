package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// ErrSourceNotFound is returned when a named data file does not exist.
var ErrSourceNotFound = errors.New("data file not found")

// Source provides read access to the static data files.
type Source interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// FSSource reads data files from a file system, typically os.DirFS(dataDir).
type FSSource struct {
	FS fs.FS
}

// ReadFile implements Source.
func (s FSSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(s.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrSourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}

// HTTPSource fetches data files relative to a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// ReadFile implements Source.
func (s HTTPSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	base, err := url.Parse(s.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	base.Path = path.Join("/", strings.TrimPrefix(base.Path, "/"), name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", name, err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", name, ErrSourceNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", name, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", name, err)
	}
	return b, nil
}
