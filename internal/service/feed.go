package service

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"github.com/nuagestudio/previewd/internal/repository"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author,omitempty"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

type FeedService struct {
	posts    repository.PostRepository
	baseURL  string
	siteName string
}

func NewFeedService(posts repository.PostRepository, baseURL, siteName string) *FeedService {
	return &FeedService{
		posts:    posts,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		siteName: siteName,
	}
}

// GenerateFeed builds an RSS 2.0 feed of all published posts, newest first.
func (s *FeedService) GenerateFeed(ctx context.Context) ([]byte, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]rssItem, 0, len(posts))
	for _, post := range posts {
		postURL := s.baseURL + "/blog/" + post.Slug
		items = append(items, rssItem{
			Title:       post.Title,
			Link:        postURL,
			Description: post.Excerpt,
			Author:      post.Author,
			Category:    post.Category,
			PubDate:     post.PublishedAt.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       s.siteName,
			Link:        s.baseURL,
			Description: s.siteName + " - Blog",
			Items:       items,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, err
	}

	result := xml.Header + string(output)
	return []byte(result), nil
}
