// Package gallery implements the case-study image carousel and its lightbox
// preview as a small state machine driving a view.View.
package gallery

import (
	"fmt"

	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/view"
)

// Gallery page targets.
const (
	TargetSection  = "sec=gallery"
	TargetSurface  = "gallery"
	TargetHint     = "p-gallery-hint"
	TargetMain     = "g-main"
	TargetThumbs   = "g-thumbs"
	TargetPrev     = "g-prev"
	TargetNext     = "g-next"
	TargetLightbox = "lightbox"
	TargetLBImage  = "lbImg"
	TargetLBClose  = "lbClose"

	thumbTarget = "g-thumb"
)

const (
	hintEmpty  = "Add images for this project in its assets folder, then list them in data/projects.json."
	hintActive = "Click the main image to zoom. Use arrows to navigate."

	defaultAlt  = "Project screenshot"
	activeClass = "active"
	openClass   = "open"
)

// State is the coarse state of a gallery.
type State int

const (
	Empty State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Active:
		return "active"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Gallery owns the carousel selection and the lightbox state for one page
// view. It is not safe for concurrent use.
type Gallery struct {
	view      view.View
	images    []portfolio.Image
	assetBase string

	active       int
	lightboxOpen bool
}

// Option configures a Gallery.
type Option func(*Gallery)

// WithAssetBase prefixes every image src, e.g. "../" for pages one level
// below the site root.
func WithAssetBase(prefix string) Option {
	return func(g *Gallery) { g.assetBase = prefix }
}

// New initializes a gallery over images and renders its initial state to v:
// Empty when there are no images, Active(0, closed) otherwise.
func New(v view.View, images []portfolio.Image, opts ...Option) *Gallery {
	g := &Gallery{view: v, images: images}
	for _, opt := range opts {
		opt(g)
	}

	if len(images) == 0 {
		v.SetText(TargetHint, hintEmpty)
		v.SetVisible(TargetSection, true)
		v.SetVisible(TargetSurface, false)
		return g
	}

	v.SetText(TargetHint, hintActive)
	v.SetVisible(TargetSurface, true)

	thumbs := make([]view.Node, len(images))
	for i, img := range images {
		alt := img.Alt
		if alt == "" {
			alt = fmt.Sprintf("Thumbnail %d", i+1)
		}
		class := "thumb"
		if i == 0 {
			class += " " + activeClass
		}
		thumbs[i] = view.Node{Tag: "img", Class: class, Attrs: []view.Attr{
			{Key: "src", Val: g.src(img)},
			{Key: "alt", Val: alt},
			{Key: "loading", Val: "lazy"},
			{Key: "data-" + thumbTarget, Val: fmt.Sprint(i)},
			{Key: "data-alt", Val: altText(img)},
		}}
	}
	v.SetChildren(TargetThumbs, thumbs)

	g.SelectIndex(0)
	return g
}

// Attach redirects subsequent view effects to v.
func (g *Gallery) Attach(v view.View) { g.view = v }

// State reports Empty or Active.
func (g *Gallery) State() State {
	if len(g.images) == 0 {
		return Empty
	}
	return Active
}

// ActiveIndex is the selected image; always 0 for an Empty gallery.
func (g *Gallery) ActiveIndex() int { return g.active }

// LightboxOpen reports whether the preview overlay is showing.
func (g *Gallery) LightboxOpen() bool { return g.lightboxOpen }

// Len is the number of images.
func (g *Gallery) Len() int { return len(g.images) }

// SelectIndex selects image i, wrapping in both directions.
func (g *Gallery) SelectIndex(i int) {
	n := len(g.images)
	if n == 0 {
		return
	}
	g.active = ((i % n) + n) % n

	img := g.images[g.active]
	g.view.SetAttr(TargetMain, "src", g.src(img))
	g.view.SetAttr(TargetMain, "alt", altText(img))
	for j := range g.images {
		g.view.SetClass(ThumbTarget(j), activeClass, j == g.active)
	}

	if g.lightboxOpen {
		g.showPreview()
	}
}

// Next selects the following image.
func (g *Gallery) Next() { g.SelectIndex(g.active + 1) }

// Prev selects the preceding image.
func (g *Gallery) Prev() { g.SelectIndex(g.active - 1) }

// OpenLightbox shows the active image in the overlay.
func (g *Gallery) OpenLightbox() {
	if g.State() != Active {
		return
	}
	g.lightboxOpen = true
	g.showPreview()
	g.view.SetClass(TargetLightbox, openClass, true)
	g.view.SetAttr(TargetLightbox, "aria-hidden", "false")
}

// CloseLightbox hides the overlay and drops its image source.
func (g *Gallery) CloseLightbox() {
	if g.State() != Active {
		return
	}
	g.lightboxOpen = false
	g.view.SetClass(TargetLightbox, openClass, false)
	g.view.SetAttr(TargetLightbox, "aria-hidden", "true")
	g.view.SetAttr(TargetLBImage, "src", "")
}

// showPreview mirrors the main image into the lightbox.
func (g *Gallery) showPreview() {
	img := g.images[g.active]
	g.view.SetAttr(TargetLBImage, "src", g.src(img))
	g.view.SetAttr(TargetLBImage, "alt", altText(img))
}

func altText(img portfolio.Image) string {
	if img.Alt != "" {
		return img.Alt
	}
	return defaultAlt
}

func (g *Gallery) src(img portfolio.Image) string {
	return g.assetBase + img.Src
}

// ThumbTarget is the target of thumbnail i.
func ThumbTarget(i int) string {
	return fmt.Sprintf("%s=%d", thumbTarget, i)
}
