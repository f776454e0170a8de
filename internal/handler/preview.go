package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nuagestudio/previewd/internal/crawler"
	"github.com/nuagestudio/previewd/internal/repository"
	"github.com/nuagestudio/previewd/internal/service"
)

type PreviewHandler struct {
	posts    repository.PostRepository
	previews *service.PreviewService
	siteURL  string
	maxAge   time.Duration
}

func NewPreviewHandler(posts repository.PostRepository, previews *service.PreviewService, siteURL string, maxAge time.Duration) *PreviewHandler {
	return &PreviewHandler{
		posts:    posts,
		previews: previews,
		siteURL:  strings.TrimSuffix(siteURL, "/"),
		maxAge:   maxAge,
	}
}

// ShowPost is the crawler-aware dispatch for GET /blog/{slug}.
// Known crawlers get the pre-rendered metadata document; everyone else is
// permanently redirected to the canonical site, without a store lookup —
// the destination handles its own 404s.
func (h *PreviewHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		NotFound(w)
		return
	}

	if !crawler.IsCrawler(r.UserAgent()) {
		http.Redirect(w, r, h.siteURL+"/blog/"+slug, http.StatusMovedPermanently)
		return
	}

	post, err := h.posts.PublishedBySlug(r.Context(), slug)
	if errors.Is(err, repository.ErrPostNotFound) {
		// Expected case, not an error condition
		slog.Info("preview post not found", "slug", slug)
		NotFound(w)
		return
	}
	if err != nil {
		// Detail goes to the log, never into the response body
		slog.Error("preview lookup failed", "slug", slug, "error", err)
		ServerError(w)
		return
	}

	doc := h.previews.RenderDocument(post)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
	_, err = w.Write([]byte(doc))
	if err != nil {
		slog.Error("preview write failed", "slug", slug, "error", err)
	}
}
