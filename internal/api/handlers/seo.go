package handlers

import (
	"net/http"
	"time"

	"github.com/drbuilds/builds-backend/internal/content"
	"github.com/drbuilds/builds-backend/internal/seo"
)

type SEOHandler struct {
	loader  *content.Loader
	siteURL string
	now     func() time.Time
}

func NewSEOHandler(loader *content.Loader, siteURL string) *SEOHandler {
	return &SEOHandler{loader: loader, siteURL: siteURL, now: time.Now}
}

// Sitemap serves GET /sitemap as sitemap.org XML.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	xml := seo.Sitemap(h.siteURL, h.loader.AllPosts(), h.now())

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(xml))
}

// Robots serves GET /robots as plain text.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write([]byte(seo.Robots(h.siteURL)))
}
