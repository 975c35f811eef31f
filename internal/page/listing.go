package page

import (
	"context"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/view"
)

// Listing renders the project grid.
type Listing struct {
	loader portfolio.ProjectLoader
	link   render.Linker
	logger *zap.Logger
}

// NewListing creates a listing controller.
func NewListing(loader portfolio.ProjectLoader, link render.Linker, logger *zap.Logger) *Listing {
	return &Listing{loader: loader, link: link, logger: orNop(logger)}
}

// Render loads the dataset once and fills the grid, or replaces it with an
// inline notice when the load fails.
func (c *Listing) Render(ctx context.Context, v view.View) Outcome {
	projects, err := c.loader.LoadProjects(ctx)
	if err != nil {
		c.logger.Error("rendering project grid", zap.Error(err))
		render.RenderGridError(v)
		return LoadFailed
	}
	render.RenderGrid(v, projects, c.link)
	c.logger.Debug("rendered project grid", zap.Int("projects", len(projects)))
	return Rendered
}
