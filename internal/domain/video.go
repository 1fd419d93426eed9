package domain

import "time"

// Video represents an uploaded video. VideoURL is immutable after creation;
// only the thumbnail, title, description, and publish state may change.
type Video struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VideoWithOwner is a video joined with its owner's public channel fields,
// used in listings.
type VideoWithOwner struct {
	Video
	OwnerUsername  string `json:"owner_username"`
	OwnerAvatarURL string `json:"owner_avatar_url"`
}
