package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/nuagestudio/previewd/internal/service"
)

type SEOHandler struct {
	sitemapService *service.SitemapService
	feedService    *service.FeedService
}

// NewSEOHandler creates a new SEO handler
func NewSEOHandler(sitemapService *service.SitemapService, feedService *service.FeedService) *SEOHandler {
	return &SEOHandler{
		sitemapService: sitemapService,
		feedService:    feedService,
	}
}

// Robots serves the robots.txt file
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	// Try to serve from static directory
	robotsPath := filepath.Join("static", "robots.txt")
	content, err := os.ReadFile(robotsPath)

	if err != nil {
		// Fallback to a simple default robots.txt
		content = []byte(`User-agent: *
Allow: /
Sitemap: /sitemap.xml`)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(content)
}

// Sitemap generates and serves the sitemap.xml dynamically
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	sitemap, err := h.sitemapService.GenerateSitemap(r.Context())
	if err != nil {
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(sitemap)
}

// Feed generates and serves the RSS feed
func (h *SEOHandler) Feed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.feedService.GenerateFeed(r.Context())
	if err != nil {
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write(feed)
}
