package render

import (
	"strings"

	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/view"
)

// Case-study page targets.
const (
	TargetName     = "p-name"
	TargetSubtitle = "p-subtitle"
	TargetMeta     = "p-meta"
	TargetRole     = "p-role"
	TargetTeam     = "p-team"
	TargetOverview = "p-overview"
	TargetTimeline = "p-timeline"
	TargetLinks    = "p-links"
)

const (
	teamBadge        = "Team Project"
	defaultMilestone = "Milestone"
	defaultLinkLabel = "Link"
)

// listSection ties a list field to its container and enclosing section.
type listSection struct {
	target  string
	section string
	items   func(portfolio.Project) []string
}

var listSections = []listSection{
	{"p-resp", "responsibilities", func(p portfolio.Project) []string { return p.Responsibilities }},
	{"p-tools", "tools", func(p portfolio.Project) []string { return p.Tools }},
	{"p-challenges", "challenges", func(p portfolio.Project) []string { return p.Challenges }},
	{"p-solutions", "solutions", func(p portfolio.Project) []string { return p.Solutions }},
	{"p-results", "results", func(p portfolio.Project) []string { return p.Results }},
}

// SectionTarget is the target of the enclosing section called name.
func SectionTarget(name string) string {
	return "sec=" + name
}

// RenderDetail populates the case-study page for p. Rendering the same
// record again produces the same page.
func RenderDetail(v view.View, p portfolio.Project) {
	v.SetText(TargetName, p.Name)
	v.SetText(TargetSubtitle, p.Subtitle)

	v.SetChildren(TargetMeta, metaBadges(p))
	v.SetText(TargetRole, p.Role)

	var team []view.Node
	if p.Team {
		team = append(team, pill(teamBadge))
	}
	v.SetChildren(TargetTeam, team)

	v.SetText(TargetOverview, p.Overview)
	v.SetVisible(SectionTarget("overview"), portfolio.TextSection(p.Overview).Present())

	for _, ls := range listSections {
		renderList(v, ls.target, SectionTarget(ls.section), portfolio.SectionOf(ls.items(p)))
	}
	renderTimeline(v, portfolio.SectionOf(p.Timeline))
	renderLinks(v, portfolio.SectionOf(p.Links))
}

// metaBadges returns status, role and team badges, in that order, for the
// attributes that are present.
func metaBadges(p portfolio.Project) []view.Node {
	var badges []view.Node
	if p.Status != "" {
		badges = append(badges, pill("Status: "+p.Status))
	}
	if p.Role != "" {
		badges = append(badges, pill("Role: "+p.Role))
	}
	if p.Team {
		badges = append(badges, pill(teamBadge))
	}
	return badges
}

func pill(text string) view.Node {
	return view.TextEl("span", "pill", text)
}

// renderList writes one list item per entry and hides the enclosing section
// when there are none.
func renderList(v view.View, target, section string, s portfolio.Section[string]) {
	items := make([]view.Node, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, view.TextEl("li", "", item))
	}
	v.SetChildren(target, items)
	v.SetVisible(section, s.Present())
}

func renderTimeline(v view.View, s portfolio.Section[portfolio.Milestone]) {
	entries := make([]view.Node, 0, len(s.Items()))
	for _, m := range s.Items() {
		label := m.Label
		if label == "" {
			label = defaultMilestone
		}
		entries = append(entries, view.El("div", "titem",
			view.TextEl("p", "tlabel", label),
			view.TextEl("p", "tdetail", m.Detail),
		))
	}
	v.SetChildren(TargetTimeline, entries)
	v.SetVisible(SectionTarget("timeline"), s.Present())
}

// renderLinks renders the link row. The first link is always the primary
// button.
func renderLinks(v view.View, s portfolio.Section[portfolio.Link]) {
	buttons := make([]view.Node, 0, len(s.Items()))
	for i, l := range s.Items() {
		class := "btn outline"
		if i == 0 {
			class = "btn primary"
		}
		href := l.URL
		if href == "" {
			href = "#"
		}
		label := l.Label
		if label == "" {
			label = defaultLinkLabel
		}
		b := view.TextEl("a", class, label).WithAttr("href", href)
		if IsExternal(l.URL) {
			b = b.WithAttr("target", "_blank").WithAttr("rel", "noreferrer")
		}
		buttons = append(buttons, b)
	}
	v.SetChildren(TargetLinks, buttons)
	v.SetVisible(TargetLinks, s.Present())
}

// IsExternal reports whether url uses an http(s) scheme.
func IsExternal(url string) bool {
	return strings.HasPrefix(url, "http")
}
