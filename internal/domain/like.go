package domain

import "time"

// Like target types.
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like records that a user liked a video, comment, or tweet. The
// (target_type, target_id, liked_by) triple is unique, which makes the
// like endpoint a true toggle.
type Like struct {
	ID         string    `json:"id"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	LikedBy    string    `json:"liked_by"`
	CreatedAt  time.Time `json:"created_at"`
}
