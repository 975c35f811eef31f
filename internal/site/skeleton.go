package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/folio/internal/view"
)

// TemplatesDir is where a site may override the default skeletons with
// index.html and project.html.
const TemplatesDir = "templates"

// skeletonData is what a skeleton template can reference.
type skeletonData struct {
	SiteTitle string
	BasePath  string
}

// Skeletons produces fresh, unrendered page documents.
type Skeletons struct {
	title   string
	index   *template.Template
	project *template.Template
}

// LoadSkeletons parses the page skeletons, preferring the site's own
// templates over the built-in ones.
func LoadSkeletons(siteDir, title string) (*Skeletons, error) {
	index, err := loadSkeleton(siteDir, "index.html", indexTemplate)
	if err != nil {
		return nil, err
	}
	project, err := loadSkeleton(siteDir, "project.html", projectTemplate)
	if err != nil {
		return nil, err
	}
	return &Skeletons{title: title, index: index, project: project}, nil
}

func loadSkeleton(siteDir, name, fallback string) (*template.Template, error) {
	text := fallback
	if siteDir != "" {
		path := filepath.Join(siteDir, TemplatesDir, name)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			text = string(data)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("reading skeleton %s: %w", path, err)
		}
	}

	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing skeleton %s: %w", name, err)
	}
	return tmpl, nil
}

// Index returns a new listing page. basePath prefixes links to shared
// static files.
func (s *Skeletons) Index(basePath string) (*view.Document, error) {
	return s.execute(s.index, basePath)
}

// Project returns a new case-study page.
func (s *Skeletons) Project(basePath string) (*view.Document, error) {
	return s.execute(s.project, basePath)
}

func (s *Skeletons) execute(tmpl *template.Template, basePath string) (*view.Document, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, skeletonData{SiteTitle: s.title, BasePath: basePath}); err != nil {
		return nil, fmt.Errorf("executing skeleton %s: %w", tmpl.Name(), err)
	}
	return view.Parse(&buf)
}

// staticFile is an embedded asset served under /static/.
type staticFile struct {
	content     string
	contentType string
}

var staticFiles = map[string]staticFile{
	"style.css":  {content: cssContent, contentType: "text/css; charset=utf-8"},
	"gallery.js": {content: jsContent, contentType: "text/javascript; charset=utf-8"},
}

// StaticAsset returns a built-in static file by name.
func StaticAsset(name string) (content []byte, contentType string, ok bool) {
	f, ok := staticFiles[name]
	if !ok {
		return nil, "", false
	}
	return []byte(f.content), f.contentType, true
}

// StaticAssetNames lists the built-in static files.
func StaticAssetNames() []string {
	return []string{"gallery.js", "style.css"}
}
