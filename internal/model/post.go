package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Post is the published content item read from the store. The preview
// service never writes it; only the seed tool inserts rows.
type Post struct {
	ID          string     `db:"id"`
	Slug        string     `db:"slug"`
	Title       string     `db:"title"`
	Excerpt     string     `db:"excerpt"`
	Author      string     `db:"author"`
	Category    string     `db:"category"`
	ImageURL    string     `db:"image_url"`
	Tags        TagList    `db:"tags"`
	PublishedAt time.Time  `db:"published_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	IsPublished bool       `db:"is_published"`
	CreatedAt   time.Time  `db:"created_at"`
}

// ModifiedAt returns the last-modified timestamp, falling back to the
// publication time when the post was never updated.
func (p *Post) ModifiedAt() time.Time {
	if p.UpdatedAt != nil {
		return *p.UpdatedAt
	}
	return p.PublishedAt
}

// TagList stores ordered tags as a JSON TEXT column. JSON instead of a
// delimited string so tags may contain commas.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TagList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(t))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(t))
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}
}
