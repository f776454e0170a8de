package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nuagestudio/previewd/internal/config"
	"github.com/nuagestudio/previewd/internal/db"
	"github.com/nuagestudio/previewd/internal/repository"
	"github.com/nuagestudio/previewd/internal/service"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	Posts          repository.PostRepository
	PreviewService *service.PreviewService
	SitemapService *service.SitemapService
	FeedService    *service.FeedService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize content store
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize content store: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	postRepository := repository.NewPostRepository(database)

	// Services
	previewService := service.NewPreviewService(cfg.SiteURL, cfg.AppName)
	sitemapService := service.NewSitemapService(postRepository, cfg.SiteURL)
	feedService := service.NewFeedService(postRepository, cfg.SiteURL, cfg.AppName)

	return &App{
		Cfg:            cfg,
		DB:             database,
		Posts:          postRepository,
		PreviewService: previewService,
		SitemapService: sitemapService,
		FeedService:    feedService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
