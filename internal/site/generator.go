package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/view"
	"github.com/ziadkadry99/folio/internal/walker"
)

// Output layout.
const (
	ProjectsDir = "projects"
	StaticDir   = "static"
)

// PublishedDirs are the site subtrees copied verbatim into the output.
var PublishedDirs = []string{"data", "assets"}

// Generator builds the static site: the listing page, one page per project,
// the shared static files, and the site's data and assets.
type Generator struct {
	SiteDir   string
	OutputDir string
	Include   []string
	Exclude   []string

	Loader    portfolio.ProjectLoader
	Skeletons *Skeletons
	Reporter  progress.Reporter
	Logger    *zap.Logger
}

// Result summarises a build.
type Result struct {
	Pages   int
	Copied  int
	Skipped int                 // files already up to date in the output
	Assets  map[walker.Kind]int // published site files by kind
	Missing []string            // gallery images with no published image file
}

// Generate runs a full build. The dataset is loaded once and every page is
// rendered from that snapshot.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	res := Result{Assets: make(map[walker.Kind]int)}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	projects, err := g.Loader.LoadProjects(ctx)
	if err != nil {
		return res, fmt.Errorf("loading projects: %w", err)
	}
	projects = publishable(projects, logger)

	files, err := walker.Walk(walker.Config{
		RootDir: g.SiteDir,
		Dirs:    PublishedDirs,
		Include: g.Include,
		Exclude: g.Exclude,
	})
	if err != nil {
		return res, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return res, err
	}

	defer reporter.Finish()
	reporter.Phase("Rendering pages", 1+len(projects))

	snapshot := portfolio.Static(projects)

	// Listing page.
	index, err := g.Skeletons.Index("")
	if err != nil {
		return res, err
	}
	page.NewListing(snapshot, render.FileLinker(ProjectsDir), logger).Render(ctx, index)
	if err := writeDocument(filepath.Join(g.OutputDir, "index.html"), index); err != nil {
		return res, err
	}
	res.Pages++
	reporter.Step("index.html")

	// Project pages.
	detail := page.NewDetail(snapshot, "../", logger)
	for _, p := range projects {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		doc, err := g.Skeletons.Project("../")
		if err != nil {
			return res, err
		}
		if _, outcome := detail.Render(ctx, doc, p.Slug); outcome != page.Rendered {
			return res, fmt.Errorf("rendering project %q: %s", p.Slug, outcome)
		}
		rel := path.Join(ProjectsDir, p.Slug+".html")
		if err := writeDocument(filepath.Join(g.OutputDir, filepath.FromSlash(rel)), doc); err != nil {
			return res, err
		}
		res.Pages++
		reporter.Step(rel)
	}

	reporter.Phase("Copying assets", len(staticFiles)+len(files))

	// Built-in static files.
	for _, name := range StaticAssetNames() {
		content, _, _ := StaticAsset(name)
		rel := path.Join(StaticDir, name)
		if err := writeFile(filepath.Join(g.OutputDir, filepath.FromSlash(rel)), content); err != nil {
			return res, err
		}
		reporter.Step(rel)
	}

	// Site data and assets.
	for _, f := range files {
		copied, err := copyIfChanged(f, filepath.Join(g.OutputDir, filepath.FromSlash(f.RelPath)))
		if err != nil {
			return res, fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
		if copied {
			res.Copied++
		} else {
			res.Skipped++
		}
		res.Assets[f.Kind]++
		reporter.Step(f.RelPath)
	}

	res.Missing = missingImages(projects, files)
	for _, src := range res.Missing {
		logger.Warn("gallery image not found in site assets", zap.String("src", src))
	}

	logger.Info("site built",
		zap.String("output", g.OutputDir),
		zap.Int("pages", res.Pages),
		zap.Int("copied", res.Copied),
		zap.Int("unchanged", res.Skipped),
		zap.Int("images", res.Assets[walker.KindImage]),
	)
	return res, nil
}

// publishable drops records that cannot become a page file: blank slugs,
// slugs that would escape the projects directory, and repeated slugs (the
// first record wins, as it does for lookups).
func publishable(projects []portfolio.Project, logger *zap.Logger) []portfolio.Project {
	seen := make(map[string]bool, len(projects))
	out := make([]portfolio.Project, 0, len(projects))
	for _, p := range projects {
		switch {
		case strings.TrimSpace(p.Slug) == "" || p.Slug != strings.TrimSpace(p.Slug):
			logger.Warn("skipping project with blank or padded slug", zap.String("name", p.Name))
		case strings.ContainsAny(p.Slug, `/\`) || p.Slug == "." || p.Slug == "..":
			logger.Warn("skipping project with unsafe slug", zap.String("slug", p.Slug))
		case seen[p.Slug]:
			logger.Warn("skipping duplicate project slug", zap.String("slug", p.Slug))
		default:
			seen[p.Slug] = true
			out = append(out, p)
		}
	}
	return out
}

// missingImages lists local gallery sources that no published image file
// provides.
func missingImages(projects []portfolio.Project, files []walker.File) []string {
	have := make(map[string]bool, len(files))
	for _, f := range files {
		if f.Kind == walker.KindImage {
			have[f.RelPath] = true
		}
	}
	var missing []string
	for _, p := range projects {
		for _, img := range p.Gallery.Images {
			if img.Src == "" || render.IsExternal(img.Src) {
				continue
			}
			if !have[path.Clean(strings.TrimPrefix(img.Src, "/"))] {
				missing = append(missing, img.Src)
			}
		}
	}
	return missing
}

func writeDocument(dst string, doc *view.Document) error {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("rendering %s: %w", dst, err)
	}
	return writeFile(dst, buf.Bytes())
}

func writeFile(dst string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, content, 0o644)
}

// copyIfChanged copies f to dst unless dst already has the same content.
func copyIfChanged(f walker.File, dst string) (bool, error) {
	if hash, err := walker.HashFile(dst); err == nil && hash == f.ContentHash {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}
	in, err := os.Open(f.Path)
	if err != nil {
		return false, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, err
	}
	return true, out.Close()
}
