package domain

import "time"

// Playlist is a named, user-owned collection of videos.
type Playlist struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlaylistWithVideos is a playlist together with its member videos, ordered
// by when they were added.
type PlaylistWithVideos struct {
	Playlist
	Videos []Video `json:"videos"`
}
