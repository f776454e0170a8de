package service

import (
	"context"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuagestudio/previewd/internal/model"
)

type stubPostRepo struct {
	posts []*model.Post
	err   error
}

func (s *stubPostRepo) PublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return nil, nil
}

func (s *stubPostRepo) ListPublished(ctx context.Context) ([]*model.Post, error) {
	return s.posts, s.err
}

func (s *stubPostRepo) Create(ctx context.Context, post *model.Post) error {
	return nil
}

func TestGenerateSitemap(t *testing.T) {
	repo := &stubPostRepo{posts: []*model.Post{{
		Slug:        "my-post",
		Title:       "Un titre",
		PublishedAt: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		IsPublished: true,
	}}}

	svc := NewSitemapService(repo, "https://example.com/")
	out, err := svc.GenerateSitemap(context.Background())
	require.NoError(t, err)

	var sitemap model.Sitemap
	require.NoError(t, xml.Unmarshal(out, &sitemap))

	locs := make([]string, 0, len(sitemap.URLs))
	for _, u := range sitemap.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Contains(t, locs, "https://example.com/")
	assert.Contains(t, locs, "https://example.com/blog")
	assert.Contains(t, locs, "https://example.com/blog/my-post")
}

func TestGenerateFeed(t *testing.T) {
	repo := &stubPostRepo{posts: []*model.Post{{
		Slug:        "my-post",
		Title:       "Un titre",
		Excerpt:     "Un extrait.",
		Author:      "Camille Durand",
		Category:    "Conseils",
		PublishedAt: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		IsPublished: true,
	}}}

	svc := NewFeedService(repo, "https://example.com", "Nuage Studio")
	out, err := svc.GenerateFeed(context.Background())
	require.NoError(t, err)

	var feed rssXML
	require.NoError(t, xml.Unmarshal(out, &feed))

	assert.Equal(t, "2.0", feed.Version)
	assert.Equal(t, "Nuage Studio", feed.Channel.Title)
	require.Len(t, feed.Channel.Items, 1)
	assert.Equal(t, "https://example.com/blog/my-post", feed.Channel.Items[0].Link)
	assert.Equal(t, "Un titre", feed.Channel.Items[0].Title)
}
