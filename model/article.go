// api/model/article.go
package model

import "time"

type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body"`
	CoverImage  string     `json:"coverImage"`
	Tags        []string   `json:"tags"`
	Author      string     `json:"author"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ArticleInput struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Body       string   `json:"body"`
	CoverImage string   `json:"coverImage"`
	Tags       []string `json:"tags"`
	Author     string   `json:"author"`
	Published  bool     `json:"published"`
}

// ArticleFilter narrows listing queries.
type ArticleFilter struct {
	Tag           string
	PublishedOnly bool
}
