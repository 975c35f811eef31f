// Package render maps project records onto page views: the card grid of the
// listing page and the fields of the case-study page.
package render

import (
	"net/url"
	"strings"

	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/view"
)

// GridTarget is the container the listing cards are rendered into.
const GridTarget = "projects-grid"

const (
	cardCTA        = "Open case study →"
	gridLoadFailed = "Could not load projects data."
)

// Linker builds the detail URL for a slug.
type Linker func(slug string) string

// QueryLinker links to a single detail page that resolves the project from
// its slug query parameter: "<path>?slug=<encoded>".
func QueryLinker(path string) Linker {
	return func(slug string) string {
		return path + "?slug=" + EncodeComponent(slug)
	}
}

// FileLinker links to one prerendered page per project: "<dir>/<slug>.html".
func FileLinker(dir string) Linker {
	return func(slug string) string {
		return strings.TrimSuffix(dir, "/") + "/" + url.PathEscape(slug) + ".html"
	}
}

// EncodeComponent percent-encodes s for use as a query value, encoding
// spaces as %20.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// RenderGrid replaces the grid contents with one card per project, in
// dataset order.
func RenderGrid(v view.View, projects []portfolio.Project, link Linker) {
	cards := make([]view.Node, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, Card(p, link))
	}
	v.SetChildren(GridTarget, cards)
}

// RenderGridError replaces the grid contents with a load failure notice.
func RenderGridError(v view.View) {
	v.SetChildren(GridTarget, []view.Node{view.TextEl("p", "section-hint", gridLoadFailed)})
}

// Card builds the summary card for one project.
func Card(p portfolio.Project, link Linker) view.Node {
	top := view.El("div", "card-top", view.TextEl("h3", "", p.DisplayName()))
	if p.Tag != "" {
		top.Children = append(top.Children, view.TextEl("span", "tag", p.Tag))
	}

	card := view.El("a", "card card-link", top).WithAttr("href", link(p.Slug))

	// Shorter card line first, overview as fallback.
	desc := p.CardDescription
	if desc == "" {
		desc = p.Overview
	}
	if desc = strings.TrimSpace(desc); desc != "" {
		card.Children = append(card.Children, view.TextEl("p", "", desc))
	}

	card.Children = append(card.Children, view.El("div", "links", view.TextEl("span", "fake-link", cardCTA)))

	if p.Team {
		card = card.WithAttr("data-team", "true")
	}
	return card
}
