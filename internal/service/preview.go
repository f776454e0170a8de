package service

import (
	"encoding/json"
	"fmt"
	"html"
	"path"
	"strings"
	"time"

	"github.com/nuagestudio/previewd/internal/model"
)

// PreviewService renders the self-contained HTML document served to
// link-preview crawlers. Rendering is a pure function of the post and the
// configured site origin: same input, byte-identical output.
type PreviewService struct {
	siteURL  string
	siteName string
}

func NewPreviewService(siteURL, siteName string) *PreviewService {
	return &PreviewService{
		siteURL:  strings.TrimSuffix(siteURL, "/"),
		siteName: siteName,
	}
}

// frenchMonths for the human-readable fallback body. The stdlib has no
// locale-aware date formatting and x/text does not cover dates.
var frenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

func formatFrenchDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// ResolveImageURL returns an absolute URL for use in og:image/twitter:image,
// which reject relative URLs. Only http:// and https:// prefixes count as
// absolute; everything else is joined to the site origin with a single slash.
func (s *PreviewService) ResolveImageURL(imageURL string) string {
	if strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return imageURL
	}
	if !strings.HasPrefix(imageURL, "/") {
		imageURL = "/" + imageURL
	}
	return s.siteURL + imageURL
}

// CanonicalURL is the authoritative human-facing URL for a slug.
func (s *PreviewService) CanonicalURL(slug string) string {
	return s.siteURL + "/blog/" + slug
}

func imageMIMEType(imageURL string) string {
	clean := imageURL
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	switch strings.ToLower(path.Ext(clean)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}

// JSON-LD vocabulary (schema.org). Serialized with encoding/json so quotes,
// backslashes and angle brackets in stored fields cannot break the script
// block or the JSON syntax.
type ldImage struct {
	Type   string `json:"@type"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ldPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type ldOrganization struct {
	Type string  `json:"@type"`
	Name string  `json:"name"`
	Logo ldImage `json:"logo"`
}

type ldWebPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type ldBlogPosting struct {
	Context          string         `json:"@context"`
	Type             string         `json:"@type"`
	Headline         string         `json:"headline"`
	Description      string         `json:"description"`
	Image            ldImage        `json:"image"`
	Author           ldPerson       `json:"author"`
	Publisher        ldOrganization `json:"publisher"`
	DatePublished    string         `json:"datePublished"`
	DateModified     string         `json:"dateModified"`
	MainEntityOfPage ldWebPage      `json:"mainEntityOfPage"`
	ArticleSection   string         `json:"articleSection,omitempty"`
	Keywords         []string       `json:"keywords,omitempty"`
}

// RenderDocument builds the complete crawler-facing HTML document: meta
// tags for Open Graph, Twitter Cards and article metadata, a JSON-LD
// BlogPosting block, and a minimal readable body for crawlers that show
// visible text as the preview snippet.
func (s *PreviewService) RenderDocument(post *model.Post) string {
	canonical := s.CanonicalURL(post.Slug)
	image := s.ResolveImageURL(post.ImageURL)
	published := post.PublishedAt.UTC().Format(time.RFC3339)
	modified := post.ModifiedAt().UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"fr\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s | %s</title>\n", html.EscapeString(post.Title), html.EscapeString(s.siteName))

	metaName(&b, "description", post.Excerpt)
	metaName(&b, "robots", "index, follow")
	metaName(&b, "author", post.Author)
	fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\">\n", html.EscapeString(canonical))

	metaProperty(&b, "og:type", "article")
	metaProperty(&b, "og:url", canonical)
	metaProperty(&b, "og:title", post.Title)
	metaProperty(&b, "og:description", post.Excerpt)
	metaProperty(&b, "og:image", image)
	metaProperty(&b, "og:image:secure_url", image)
	metaProperty(&b, "og:image:type", imageMIMEType(image))
	metaProperty(&b, "og:image:width", "1200")
	metaProperty(&b, "og:image:height", "630")
	metaProperty(&b, "og:image:alt", post.Title)
	metaProperty(&b, "og:site_name", s.siteName)
	metaProperty(&b, "og:locale", "fr_FR")

	metaName(&b, "twitter:card", "summary_large_image")
	metaName(&b, "twitter:title", post.Title)
	metaName(&b, "twitter:description", post.Excerpt)
	metaName(&b, "twitter:image", image)
	metaName(&b, "twitter:image:alt", post.Title)

	metaProperty(&b, "article:published_time", published)
	metaProperty(&b, "article:modified_time", modified)
	metaProperty(&b, "article:author", post.Author)
	metaProperty(&b, "article:section", post.Category)
	for _, tag := range post.Tags {
		metaProperty(&b, "article:tag", tag)
	}

	b.WriteString("<script type=\"application/ld+json\">\n")
	b.WriteString(s.renderJSONLD(post, canonical, image, published, modified))
	b.WriteString("\n</script>\n")

	b.WriteString("</head>\n<body>\n<article>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(post.Title))
	fmt.Fprintf(&b, "<p>Par %s · %s</p>\n", html.EscapeString(post.Author), html.EscapeString(post.Category))
	fmt.Fprintf(&b, "<p>Publié le %s</p>\n", formatFrenchDate(post.PublishedAt))
	fmt.Fprintf(&b, "<img src=\"%s\" alt=\"%s\">\n", html.EscapeString(image), html.EscapeString(post.Title))
	fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(post.Excerpt))
	b.WriteString("<p><em>Chargement de l&#39;article complet…</em></p>\n")
	b.WriteString("</article>\n</body>\n</html>\n")

	return b.String()
}

func (s *PreviewService) renderJSONLD(post *model.Post, canonical, image, published, modified string) string {
	posting := ldBlogPosting{
		Context:     "https://schema.org",
		Type:        "BlogPosting",
		Headline:    post.Title,
		Description: post.Excerpt,
		Image: ldImage{
			Type:   "ImageObject",
			URL:    image,
			Width:  1200,
			Height: 630,
		},
		Author: ldPerson{
			Type: "Person",
			Name: post.Author,
		},
		Publisher: ldOrganization{
			Type: "Organization",
			Name: s.siteName,
			Logo: ldImage{
				Type:   "ImageObject",
				URL:    s.siteURL + "/images/logo.png",
				Width:  600,
				Height: 60,
			},
		},
		DatePublished: published,
		DateModified:  modified,
		MainEntityOfPage: ldWebPage{
			Type: "WebPage",
			ID:   canonical,
		},
		ArticleSection: post.Category,
		Keywords:       post.Tags,
	}

	// Marshal escapes <, > and & inside string values, so the block cannot
	// close the surrounding <script> element early.
	out, err := json.MarshalIndent(posting, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}

func metaName(b *strings.Builder, name, content string) {
	fmt.Fprintf(b, "<meta name=\"%s\" content=\"%s\">\n", name, html.EscapeString(content))
}

func metaProperty(b *strings.Builder, property, content string) {
	fmt.Fprintf(b, "<meta property=\"%s\" content=\"%s\">\n", property, html.EscapeString(content))
}
