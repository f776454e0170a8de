package service

import (
	"context"
	"encoding/xml"
	"log/slog"
	"strings"
	"time"

	"github.com/nuagestudio/previewd/internal/model"
	"github.com/nuagestudio/previewd/internal/repository"
)

// publicRoutes are the static public pages of the canonical site that
// belong in the sitemap alongside the posts.
var publicRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "daily"},
	{"/blog", "0.8", "daily"},
}

type SitemapService struct {
	posts   repository.PostRepository
	baseURL string
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(posts repository.PostRepository, baseURL string) *SitemapService {
	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &SitemapService{
		posts:   posts,
		baseURL: baseURL,
	}
}

// GenerateSitemap generates a complete sitemap including all published posts
func (s *SitemapService) GenerateSitemap(ctx context.Context) ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []model.SitemapURL{},
	}

	sitemap.URLs = append(sitemap.URLs, s.staticRoutes()...)

	postURLs, err := s.postURLs(ctx)
	if err != nil {
		// Log error but don't fail - the store might be empty
		slog.Warn("failed to get post URLs for sitemap", "error", err)
	} else {
		sitemap.URLs = append(sitemap.URLs, postURLs...)
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	result := xml.Header + string(output)
	return []byte(result), nil
}

func (s *SitemapService) staticRoutes() []model.SitemapURL {
	today := time.Now().Format("2006-01-02")
	urls := make([]model.SitemapURL, 0, len(publicRoutes))

	for _, route := range publicRoutes {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + route.Path,
			LastMod:    today,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}

	return urls
}

func (s *SitemapService) postURLs(ctx context.Context) ([]model.SitemapURL, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]model.SitemapURL, 0, len(posts))
	for _, post := range posts {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/blog/" + post.Slug,
			LastMod:    post.ModifiedAt().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	return urls, nil
}
