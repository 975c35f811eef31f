package page

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/view"
)

// SlugParam is the query parameter carrying the project slug.
const SlugParam = "slug"

// ResolveSlug picks the project identity: the injected value wins, then the
// page body's data-project attribute, then the slug query parameter. Blank
// candidates fall through.
func ResolveSlug(injected string, page view.Shell, query url.Values) string {
	slug := strings.TrimSpace(injected)
	if slug == "" && page != nil {
		slug = strings.TrimSpace(page.BodyData("project"))
	}
	if slug == "" {
		slug = strings.TrimSpace(query.Get(SlugParam))
	}
	return slug
}

// Detail renders one case-study page.
type Detail struct {
	loader    portfolio.ProjectLoader
	assetBase string
	logger    *zap.Logger
}

// NewDetail creates a detail controller. assetBase prefixes gallery image
// paths.
func NewDetail(loader portfolio.ProjectLoader, assetBase string, logger *zap.Logger) *Detail {
	return &Detail{loader: loader, assetBase: assetBase, logger: orNop(logger)}
}

// Render resolves slug against a fresh load of the dataset and renders the
// project into p. On load or lookup failure the page is left as it was and
// the failure is logged once. The returned gallery is nil unless the
// project was rendered.
func (c *Detail) Render(ctx context.Context, p view.Page, slug string) (*gallery.Gallery, Outcome) {
	if slug == "" {
		return nil, NoProject
	}

	projects, err := c.loader.LoadProjects(ctx)
	if err != nil {
		c.logger.Error("rendering project page", zap.String("slug", slug), zap.Error(err))
		return nil, LoadFailed
	}

	project, err := portfolio.Find(projects, slug)
	if err != nil {
		c.logger.Error("rendering project page", zap.String("slug", slug), zap.Error(err))
		return nil, NotFound
	}

	p.SetBodyData("project", slug)
	p.AddBodyClass("project-" + slug)

	if project.Name != "" {
		p.SetTitle(project.Name + " | Case Study")
	}
	p.SetMeta("description", strings.TrimSpace(project.DisplayName()+" case study — "+project.Subtitle))

	render.RenderDetail(p, project)
	g := gallery.New(p, project.Gallery.Images, gallery.WithAssetBase(c.assetBase))

	c.logger.Debug("rendered project page",
		zap.String("slug", slug),
		zap.Int("images", g.Len()),
	)
	return g, Rendered
}
