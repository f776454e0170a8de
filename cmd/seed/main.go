// Seed tool: loads markdown posts from the content directory into the
// store. Stands in for the managed admin backend during development.
// Frontmatter keys: title, excerpt, author, category, image, tags, date,
// updated, published.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nuagestudio/previewd/internal/config"
	"github.com/nuagestudio/previewd/internal/db"
	"github.com/nuagestudio/previewd/internal/logger"
	"github.com/nuagestudio/previewd/internal/markdown"
	"github.com/nuagestudio/previewd/internal/model"
	"github.com/nuagestudio/previewd/internal/repository"
)

func main() {
	var contentDir string
	flag.StringVar(&contentDir, "content", "", "content directory (default: CONTENT_PATH)")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), "")

	if contentDir == "" {
		contentDir = cfg.ContentPath
	}

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		slog.Error("failed to initialize content store", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	posts := repository.NewPostRepository(database)
	parser := markdown.NewParser()
	ctx := context.Background()

	pattern := filepath.Join(contentDir, "blog", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		slog.Error("failed to list content files", "pattern", pattern, "error", err)
		os.Exit(1)
	}

	seeded := 0
	for _, file := range files {
		post, err := loadPost(parser, file)
		if err != nil {
			slog.Warn("skipping content file", "file", file, "error", err)
			continue
		}

		err = posts.Create(ctx, post)
		if err != nil {
			// Most likely a duplicate slug from a previous run
			slog.Warn("skipping post", "slug", post.Slug, "error", err)
			continue
		}

		slog.Info("seeded post", "slug", post.Slug, "published", post.IsPublished)
		seeded++
	}

	slog.Info("seed complete", "files", len(files), "seeded", seeded)
}

func loadPost(parser *markdown.Parser, file string) (*model.Post, error) {
	source, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	_, meta, err := parser.ParseWithFrontmatter(source)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSuffix(filepath.Base(file), ".md")
	post := &model.Post{
		Slug:        slug,
		IsPublished: true,
		PublishedAt: time.Now(),
	}

	if title, ok := meta["title"].(string); ok {
		post.Title = title
	}
	if excerpt, ok := meta["excerpt"].(string); ok {
		post.Excerpt = excerpt
	}
	if author, ok := meta["author"].(string); ok {
		post.Author = author
	}
	if category, ok := meta["category"].(string); ok {
		post.Category = category
	}
	if image, ok := meta["image"].(string); ok {
		post.ImageURL = image
	}
	if published, ok := meta["published"].(bool); ok {
		post.IsPublished = published
	}
	if dateStr, ok := meta["date"].(string); ok {
		date, err := time.Parse("2006-01-02", dateStr)
		if err == nil {
			post.PublishedAt = date
		}
	}
	if updatedStr, ok := meta["updated"].(string); ok {
		updated, err := time.Parse("2006-01-02", updatedStr)
		if err == nil {
			post.UpdatedAt = &updated
		}
	}
	if tags, ok := meta["tags"].([]any); ok {
		for _, tag := range tags {
			tagStr, ok := tag.(string)
			if ok {
				post.Tags = append(post.Tags, tagStr)
			}
		}
	}

	return post, nil
}
