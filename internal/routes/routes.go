package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nuagestudio/previewd/internal/app"
	"github.com/nuagestudio/previewd/internal/handler"
	"github.com/nuagestudio/previewd/internal/metrics"
	"github.com/nuagestudio/previewd/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.Cfg)
	health := handler.NewHealthHandler(app.DB)
	seo := handler.NewSEOHandler(app.SitemapService, app.FeedService)
	preview := handler.NewPreviewHandler(app.Posts, app.PreviewService, app.Cfg.SiteURL, app.Cfg.CacheMaxAge)

	mux := http.NewServeMux()

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)
	mux.HandleFunc("GET /feed.xml", seo.Feed)

	// Operational
	mux.HandleFunc("GET /health", health.Status)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Landing
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Crawler-aware preview dispatch
	mux.HandleFunc("GET /blog/{slug}", preview.ShowPost)

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	metrics.Init()

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		metrics.Middleware,
		middleware.Recover,
	)
}
