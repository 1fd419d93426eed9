package domain

import "time"

// Comment target types.
const (
	CommentTargetVideo = "video"
	CommentTargetTweet = "tweet"
)

// Comment is a user comment attached to a video or a tweet.
type Comment struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CommentWithOwner is a comment joined with its author's public fields.
type CommentWithOwner struct {
	Comment
	OwnerUsername  string `json:"owner_username"`
	OwnerAvatarURL string `json:"owner_avatar_url"`
}
