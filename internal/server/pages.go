package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/site"
	"github.com/ziadkadry99/folio/internal/view"
)

// GallerySessionAttr is the body data attribute carrying the live gallery
// token.
const GallerySessionAttr = "gallery-session"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc, err := s.skeletons.Index("")
	if err != nil {
		s.fail(w, err)
		return
	}
	outcome := s.listing.Render(r.Context(), doc)
	s.writePage(w, statusFor(outcome), doc)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	s.renderDetail(w, r, s.detail, BasePath(s.cfg.DetailPath), "")
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	s.renderDetail(w, r, s.slugDetail, "../", chi.URLParam(r, "slug"))
}

func (s *Server) renderDetail(w http.ResponseWriter, r *http.Request, c *page.Detail, basePath, injected string) {
	doc, err := s.skeletons.Project(basePath)
	if err != nil {
		s.fail(w, err)
		return
	}

	slug := page.ResolveSlug(injected, doc, r.URL.Query())
	g, outcome := c.Render(r.Context(), doc, slug)
	if g != nil && g.State() == gallery.Active {
		doc.SetBodyData(GallerySessionAttr, s.registry.Register(g))
	}
	s.writePage(w, statusFor(outcome), doc)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	content, contentType, ok := site.StaticAsset(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(content)
}

// statusFor maps a controller outcome to the response status. The page body
// is whatever the controller left in the document either way.
func statusFor(o page.Outcome) int {
	switch o {
	case page.NotFound:
		return http.StatusNotFound
	case page.LoadFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusOK
	}
}

func (s *Server) writePage(w http.ResponseWriter, status int, doc *view.Document) {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.logger.Error("serving page", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
