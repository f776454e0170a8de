package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuagestudio/previewd/internal/model"
)

func testPost() *model.Post {
	return &model.Post{
		ID:          "0b6f3a2e",
		Slug:        "my-post",
		Title:       "Un titre",
		Excerpt:     "Un extrait de l'article.",
		Author:      "Camille Durand",
		Category:    "Conseils",
		ImageURL:    "/images/blog/un-titre.jpg",
		Tags:        model.TagList{"conseils", "web"},
		PublishedAt: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		IsPublished: true,
	}
}

func extractJSONLD(t *testing.T, doc string) map[string]any {
	t.Helper()

	const open = `<script type="application/ld+json">`
	const close = `</script>`
	start := strings.Index(doc, open)
	require.GreaterOrEqual(t, start, 0, "document has no JSON-LD block")
	rest := doc[start+len(open):]
	end := strings.Index(rest, close)
	require.GreaterOrEqual(t, end, 0, "JSON-LD block not closed")

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(rest[:end]), &data), "JSON-LD must be valid JSON")
	return data
}

func TestRenderDocumentMetadataSurface(t *testing.T) {
	svc := NewPreviewService("https://example.com", "Nuage Studio")
	doc := svc.RenderDocument(testPost())

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</html>"))

	wantTags := []string{
		`<title>Un titre | Nuage Studio</title>`,
		`<meta name="description" content="Un extrait de l&#39;article.">`,
		`<meta name="robots" content="index, follow">`,
		`<meta name="author" content="Camille Durand">`,
		`<link rel="canonical" href="https://example.com/blog/my-post">`,
		`<meta property="og:type" content="article">`,
		`<meta property="og:url" content="https://example.com/blog/my-post">`,
		`<meta property="og:title" content="Un titre">`,
		`<meta property="og:image" content="https://example.com/images/blog/un-titre.jpg">`,
		`<meta property="og:image:secure_url" content="https://example.com/images/blog/un-titre.jpg">`,
		`<meta property="og:image:type" content="image/jpeg">`,
		`<meta property="og:image:width" content="1200">`,
		`<meta property="og:image:height" content="630">`,
		`<meta property="og:site_name" content="Nuage Studio">`,
		`<meta property="og:locale" content="fr_FR">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta name="twitter:title" content="Un titre">`,
		`<meta name="twitter:image" content="https://example.com/images/blog/un-titre.jpg">`,
		`<meta property="article:published_time" content="2026-03-10T09:30:00Z">`,
		`<meta property="article:author" content="Camille Durand">`,
		`<meta property="article:section" content="Conseils">`,
		`<meta property="article:tag" content="conseils">`,
		`<meta property="article:tag" content="web">`,
	}
	for _, tag := range wantTags {
		assert.Contains(t, doc, tag)
	}

	// Tags stay in list order
	assert.Less(t,
		strings.Index(doc, `content="conseils"`),
		strings.Index(doc, `content="web"`),
	)

	// Fallback body in French
	assert.Contains(t, doc, "<h1>Un titre</h1>")
	assert.Contains(t, doc, "Publié le 10 mars 2026")
	assert.Contains(t, doc, "Chargement de l&#39;article complet")
}

func TestRenderDocumentEscapesFields(t *testing.T) {
	svc := NewPreviewService("https://example.com", "Nuage Studio")
	post := testPost()
	post.Title = `Go <"rocks"> & 'more'`
	post.Excerpt = `1 < 2 & "quoted"`
	post.Author = `O'Brien <admin>`
	post.Category = `R&D`
	post.Tags = model.TagList{`a<b`, `c"d`}

	doc := svc.RenderDocument(post)

	assert.NotContains(t, doc, post.Title)
	assert.NotContains(t, doc, post.Author)
	assert.Contains(t, doc, `Go &lt;&#34;rocks&#34;&gt; &amp; &#39;more&#39;`)
	assert.Contains(t, doc, `1 &lt; 2 &amp; &#34;quoted&#34;`)
	assert.Contains(t, doc, `O&#39;Brien &lt;admin&gt;`)
	assert.Contains(t, doc, `<meta property="article:section" content="R&amp;D">`)
	assert.Contains(t, doc, `<meta property="article:tag" content="a&lt;b">`)
	assert.Contains(t, doc, `<meta property="article:tag" content="c&#34;d">`)
}

func TestRenderDocumentJSONLDStaysValid(t *testing.T) {
	svc := NewPreviewService("https://example.com", "Nuage Studio")
	post := testPost()
	post.Title = `Backslash \ and "quotes" and </script> breakout`
	post.Excerpt = `It's a 'test' with <angle> & "brackets"`
	post.Author = `Jean "JD" d'Arc`

	doc := svc.RenderDocument(post)
	data := extractJSONLD(t, doc)

	assert.Equal(t, "https://schema.org", data["@context"])
	assert.Equal(t, "BlogPosting", data["@type"])
	assert.Equal(t, post.Title, data["headline"])
	assert.Equal(t, post.Excerpt, data["description"])

	author, ok := data["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Person", author["@type"])
	assert.Equal(t, post.Author, author["name"])

	image, ok := data["image"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ImageObject", image["@type"])
	assert.Equal(t, "https://example.com/images/blog/un-titre.jpg", image["url"])

	publisher, ok := data["publisher"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Organization", publisher["@type"])
	assert.Equal(t, "Nuage Studio", publisher["name"])

	page, ok := data["mainEntityOfPage"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/blog/my-post", page["@id"])

	assert.Equal(t, "2026-03-10T09:30:00Z", data["datePublished"])
}

func TestResolveImageURL(t *testing.T) {
	svc := NewPreviewService("https://example.com", "Nuage Studio")

	tests := []struct {
		name  string
		image string
		want  string
	}{
		{"relative with slash", "/images/a.jpg", "https://example.com/images/a.jpg"},
		{"relative without slash", "images/a.jpg", "https://example.com/images/a.jpg"},
		{"absolute https", "https://cdn.example.net/a.jpg", "https://cdn.example.net/a.jpg"},
		{"absolute http", "http://cdn.example.net/a.jpg", "http://cdn.example.net/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ResolveImageURL(tt.image))
		})
	}
}

func TestResolveImageURLTrailingSlashOrigin(t *testing.T) {
	// No double slash even when the configured origin carries one
	svc := NewPreviewService("https://example.com/", "Nuage Studio")
	assert.Equal(t, "https://example.com/images/a.jpg", svc.ResolveImageURL("/images/a.jpg"))
}

func TestRenderDocumentIdempotent(t *testing.T) {
	svc := NewPreviewService("https://example.com", "Nuage Studio")
	post := testPost()

	first := svc.RenderDocument(post)
	second := svc.RenderDocument(post)
	assert.Equal(t, first, second)
}

func TestRenderDocumentModifiedTimeFallback(t *testing.T) {
	svc := NewPreviewService("https://example.com", "Nuage Studio")

	post := testPost()
	post.UpdatedAt = nil
	doc := svc.RenderDocument(post)
	assert.Contains(t, doc, `<meta property="article:modified_time" content="2026-03-10T09:30:00Z">`)
	data := extractJSONLD(t, doc)
	assert.Equal(t, data["datePublished"], data["dateModified"])

	updated := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	post.UpdatedAt = &updated
	doc = svc.RenderDocument(post)
	assert.Contains(t, doc, `<meta property="article:modified_time" content="2026-04-01T12:00:00Z">`)
	data = extractJSONLD(t, doc)
	assert.Equal(t, "2026-04-01T12:00:00Z", data["dateModified"])
}

func TestImageMIMEType(t *testing.T) {
	assert.Equal(t, "image/png", imageMIMEType("https://example.com/a.png"))
	assert.Equal(t, "image/webp", imageMIMEType("/a.webp?v=2"))
	assert.Equal(t, "image/jpeg", imageMIMEType("/a.jpg"))
	assert.Equal(t, "image/jpeg", imageMIMEType("/no-extension"))
}
