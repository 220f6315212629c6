// api/model/mix.go
package model

import "time"

// Mix is a published DJ mix with a hosted audio file.
type Mix struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	DJ              string     `json:"dj"`
	Description     string     `json:"description"`
	AudioURL        string     `json:"audioUrl"`
	CoverImage      string     `json:"coverImage"`
	DurationSeconds int        `json:"durationSeconds"`
	PlayCount       int64      `json:"playCount"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type MixInput struct {
	Title           string `json:"title"`
	DJ              string `json:"dj"`
	Description     string `json:"description"`
	AudioURL        string `json:"audioUrl"`
	CoverImage      string `json:"coverImage"`
	DurationSeconds int    `json:"durationSeconds"`
}
