package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nuagestudio/previewd/internal/model"
)

// ErrPostNotFound covers both an absent slug and an unpublished post; the
// two cases must be indistinguishable to callers.
var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	// PublishedBySlug performs the single filtered point-read: slug
	// equality AND the published flag.
	PublishedBySlug(ctx context.Context, slug string) (*model.Post, error)
	ListPublished(ctx context.Context) ([]*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) PublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := r.db.GetContext(ctx, &post, `
		SELECT * FROM posts
		WHERE slug = $1 AND is_published = true
	`, slug)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) ListPublished(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.SelectContext(ctx, &posts, `
		SELECT * FROM posts
		WHERE is_published = true
		ORDER BY published_at DESC
	`)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (id, slug, title, excerpt, author, category, image_url, tags, published_at, updated_at, is_published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, post.ID, post.Slug, post.Title, post.Excerpt, post.Author, post.Category,
		post.ImageURL, post.Tags, post.PublishedAt, post.UpdatedAt, post.IsPublished, post.CreatedAt)

	return err
}
