package portfolio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `{
  "projects": [
    {"slug": "alpha", "name": "Alpha", "team": true, "tools": ["X", "Y"]},
    {"slug": "beta", "cardDescription": "Second", "gallery": {"images": [{"src": "assets/b/1.png", "alt": "one"}]}},
    {"slug": "gamma", "timeline": [{"label": "Kickoff", "detail": "Week 1"}, {"detail": "Shipped"}]}
  ]
}`

func serveDataset(t *testing.T, status int, body string) (*httptest.Server, *[]http.Header) {
	t.Helper()
	var seen []http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Clone())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestHTTPLoaderPreservesOrder(t *testing.T) {
	srv, _ := serveDataset(t, http.StatusOK, sampleDataset)
	src, err := NewHTTPSource(srv.URL+"/", "data/projects.json")
	require.NoError(t, err)

	projects, err := NewLoader(src).LoadProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, []string{projects[0].Slug, projects[1].Slug, projects[2].Slug})
	assert.True(t, projects[0].Team)
	assert.Equal(t, []string{"X", "Y"}, projects[0].Tools)
	assert.Equal(t, "assets/b/1.png", projects[1].Gallery.Images[0].Src)
	assert.Equal(t, "", projects[2].Timeline[1].Label)
}

func TestHTTPLoaderBypassesCacheOnEveryCall(t *testing.T) {
	srv, seen := serveDataset(t, http.StatusOK, sampleDataset)
	src, err := NewHTTPSource("", srv.URL+"/data/projects.json")
	require.NoError(t, err)
	loader := NewLoader(src)

	for i := 0; i < 2; i++ {
		_, err := loader.LoadProjects(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, *seen, 2)
	for _, h := range *seen {
		assert.Equal(t, "no-store", h.Get("Cache-Control"))
		assert.Equal(t, "no-cache", h.Get("Pragma"))
	}
}

func TestHTTPLoaderNonSuccessStatus(t *testing.T) {
	srv, _ := serveDataset(t, http.StatusNotFound, "missing")
	src, err := NewHTTPSource("", srv.URL+"/data/projects.json")
	require.NoError(t, err)

	_, err = NewLoader(src).LoadProjects(context.Background())
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, http.StatusNotFound, loadErr.Status)
}

func TestLoaderMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>"},
		{"array document", `[{"slug":"alpha"}]`},
		{"projects not a list", `{"projects": "alpha"}`},
		{"truncated", `{"projects": [`},
		{"null document", `null`},
		{"trailing garbage", `{"projects":[{"slug":"a"}]} trailing-garbage`},
		{"second document", `{"projects":[]}{"projects":[{"slug":"x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := serveDataset(t, http.StatusOK, tt.body)
			src, err := NewHTTPSource("", srv.URL)
			require.NoError(t, err)

			projects, err := NewLoader(src).LoadProjects(context.Background())
			var loadErr *LoadError
			assert.True(t, errors.As(err, &loadErr), "got %v", err)
			assert.Nil(t, projects)
		})
	}
}

func TestLoaderMissingProjectsField(t *testing.T) {
	for _, body := range []string{`{}`, `{"projects": null}`, `{"other": 1}`} {
		projects, err := Parse([]byte(body))
		require.NoError(t, err, body)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0o644))

	loader := NewLoader(FileSource{Path: path})
	projects, err := loader.LoadProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 3)

	// The file is re-read on each call.
	require.NoError(t, os.WriteFile(path, []byte(`{"projects":[]}`), 0o644))
	projects, err = loader.LoadProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestFileSourceMissing(t *testing.T) {
	_, err := NewLoader(FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}).LoadProjects(context.Background())
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNewHTTPSourceRejectsRelative(t *testing.T) {
	_, err := NewHTTPSource("", "data/projects.json")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	projects, err := Parse([]byte(sampleDataset))
	require.NoError(t, err)

	p, err := Find(projects, "beta")
	require.NoError(t, err)
	assert.Equal(t, "Second", p.CardDescription)

	_, err = Find(projects, "delta")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "delta", nf.Slug)
}

func TestSection(t *testing.T) {
	assert.False(t, SectionOf[string](nil).Present())
	assert.False(t, SectionOf([]string{}).Present())

	s := SectionOf([]string{"a", "b"})
	assert.True(t, s.Present())
	assert.Equal(t, []string{"a", "b"}, s.Items())

	assert.False(t, TextSection("").Present())
	assert.Equal(t, []string{"x"}, TextSection("x").Items())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "alpha", Project{Slug: "alpha"}.DisplayName())
	assert.Equal(t, "Alpha", Project{Slug: "alpha", Name: "Alpha"}.DisplayName())
}
