// api/model/playlist.go
package model

import "time"

type Playlist struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverImage  string    `json:"coverImage"`
	TrackCount  int       `json:"trackCount"`
	SpotifyURL  string    `json:"spotifyUrl"`
	Curator     string    `json:"curator"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PlaylistInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
	TrackCount  int    `json:"trackCount"`
	SpotifyURL  string `json:"spotifyUrl"`
	Curator     string `json:"curator"`
}
