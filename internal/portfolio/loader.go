// Package portfolio holds the project records and the loader that reads
// them from the dataset document.
package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

// Source fetches the raw dataset document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// ProjectLoader is what page controllers depend on.
type ProjectLoader interface {
	LoadProjects(ctx context.Context) ([]Project, error)
}

// Loader parses the dataset fetched from a Source. Every call fetches anew.
type Loader struct {
	src Source
}

// NewLoader creates a Loader over src.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

func (l *Loader) String() string { return l.src.String() }

// LoadProjects fetches and parses the dataset. A well-formed document
// without a projects field yields an empty slice.
func (l *Loader) LoadProjects(ctx context.Context) ([]Project, error) {
	data, err := l.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Source: l.src.String(), Err: err}
	}
	return projects, nil
}

// Parse decodes a dataset document. The whole payload must be a single JSON
// object; trailing data and a null document are rejected.
func Parse(data []byte) ([]Project, error) {
	var ds *dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if ds == nil {
		return nil, errors.New("decoding dataset: document is null")
	}
	if ds.Projects == nil {
		return []Project{}, nil
	}
	return ds.Projects, nil
}

// Find returns the first project with the given slug.
func Find(projects []Project, slug string) (Project, error) {
	for _, p := range projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Project{}, &NotFoundError{Slug: slug}
}

// HTTPSource fetches the dataset over HTTP, bypassing caches.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource resolves ref against base (which may be empty when ref is
// already absolute).
func NewHTTPSource(base, ref string) (*HTTPSource, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset url %q: %w", ref, err)
	}
	if base != "" {
		b, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing base url %q: %w", base, err)
		}
		u = b.ResolveReference(u)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("dataset url %q is not absolute", u.String())
	}
	return &HTTPSource{URL: u.String(), Client: http.DefaultClient}, nil
}

func (s *HTTPSource) String() string { return s.URL }

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Source: s.URL, Status: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: fmt.Errorf("reading body: %w", err)}
	}
	return data, nil
}

// FileSource reads the dataset from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) String() string { return s.Path }

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	return data, nil
}

// Static serves an already loaded snapshot.
type Static []Project

func (s Static) LoadProjects(ctx context.Context) ([]Project, error) {
	return []Project(s), nil
}
