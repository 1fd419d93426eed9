package repository

import (
	"context"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
)

// UserRepository defines persistence operations for users and their session slot.
type UserRepository interface {
	// Create inserts a new user. A duplicate username or email yields
	// ErrAlreadyExists.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique identifier.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByIdentifier retrieves a user by username or email.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)

	// UpdateProfile persists the mutable profile fields (first/last name,
	// email, avatar and cover image URLs).
	UpdateProfile(ctx context.Context, user *domain.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// SetRefreshToken overwrites the user's single refresh-token slot.
	SetRefreshToken(ctx context.Context, userID, token string) error

	// ClearRefreshToken empties the slot. Clearing an already-empty slot
	// succeeds.
	ClearRefreshToken(ctx context.Context, userID string) error

	// GetChannelProfile loads the channel page aggregate for a username.
	// viewerID may be empty for anonymous requests.
	GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error)

	// AddWatchEntry records (or refreshes) a video in the user's watch history.
	AddWatchEntry(ctx context.Context, userID, videoID string) error

	// ListWatchHistory returns the user's watched videos, most recent first,
	// with the total count.
	ListWatchHistory(ctx context.Context, userID string, offset, limit int) ([]domain.WatchEntry, int, error)
}

// VideoUpdate holds the optional fields of an ownership-scoped video update.
// nil fields keep their current value.
type VideoUpdate struct {
	Title        *string
	Description  *string
	IsPublished  *bool
	ThumbnailURL *string
}

// ChannelVideosQuery holds the parameters for listing a channel's videos.
type ChannelVideosQuery struct {
	ChannelID string
	Query     string // optional title substring
	SortBy    string // created_at, views, title, duration
	SortDesc  bool
	Offset    int
	Limit     int
}

// VideoRepository defines persistence operations for videos.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error

	GetByID(ctx context.Context, id string) (*domain.Video, error)

	// ListChannel returns the published videos of a channel plus the total count.
	ListChannel(ctx context.Context, q ChannelVideosQuery) ([]domain.Video, int, error)

	// UpdateOwned applies the patch in a single statement scoped to
	// id AND owner_id, returning the updated row. Zero rows matched yields
	// ErrNotFound whether the video is missing or owned by someone else.
	UpdateOwned(ctx context.Context, id, ownerID string, patch VideoUpdate) (*domain.Video, error)

	// DeleteOwned removes the video scoped to id AND owner_id and returns
	// the deleted row so the caller can clean up object storage.
	DeleteOwned(ctx context.Context, id, ownerID string) (*domain.Video, error)

	// IncrementViews bumps the view counter by one.
	IncrementViews(ctx context.Context, id string) error

	// ExistsPublished reports whether a published video with this id exists.
	ExistsPublished(ctx context.Context, id string) (bool, error)
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error

	// ListByTarget returns comments on a video or tweet, newest first, with
	// the author's public fields and the total count.
	ListByTarget(ctx context.Context, targetType, targetID string, offset, limit int) ([]domain.CommentWithOwner, int, error)

	// UpdateOwned replaces the content in a single statement scoped to
	// id AND owner_id, returning the updated row.
	UpdateOwned(ctx context.Context, id, ownerID, content string) (*domain.Comment, error)

	// DeleteOwned removes the comment scoped to id AND owner_id.
	DeleteOwned(ctx context.Context, id, ownerID string) error

	// Exists reports whether a comment with this id exists.
	Exists(ctx context.Context, id string) (bool, error)
}

// TweetRepository defines persistence operations for tweets.
type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) error

	ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error)

	UpdateOwned(ctx context.Context, id, ownerID, content string) (*domain.Tweet, error)

	DeleteOwned(ctx context.Context, id, ownerID string) error

	Exists(ctx context.Context, id string) (bool, error)
}

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	// Insert adds a like, reporting false without error when the like
	// already exists (ON CONFLICT DO NOTHING).
	Insert(ctx context.Context, like *domain.Like) (bool, error)

	// Delete removes a like, reporting whether a row was deleted.
	Delete(ctx context.Context, targetType, targetID, likedBy string) (bool, error)

	// ListLikedVideos returns the videos a user has liked, with owner info.
	ListLikedVideos(ctx context.Context, userID string) ([]domain.VideoWithOwner, error)
}

// PlaylistRepository defines persistence operations for playlists.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error

	// GetByID loads a playlist with its member videos.
	GetByID(ctx context.Context, id string) (*domain.PlaylistWithVideos, error)

	ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error)

	// UpdateOwned applies the patch scoped to id AND owner_id. nil fields
	// keep their current value.
	UpdateOwned(ctx context.Context, id, ownerID string, name, description *string) (*domain.Playlist, error)

	DeleteOwned(ctx context.Context, id, ownerID string) error

	// AddVideo inserts a membership row only when the requester owns the
	// playlist; a duplicate membership yields ErrAlreadyExists.
	AddVideo(ctx context.Context, playlistID, videoID, ownerID string) error

	// RemoveVideo deletes a membership row only when the requester owns the
	// playlist.
	RemoveVideo(ctx context.Context, playlistID, videoID, ownerID string) error
}

// SubscriptionRepository defines persistence operations for subscriptions.
type SubscriptionRepository interface {
	// Create inserts a subscription; a duplicate pair yields ErrAlreadyExists.
	Create(ctx context.Context, sub *domain.Subscription) error

	// Delete removes the (subscriber, channel) pair; zero rows yields
	// ErrNotFound.
	Delete(ctx context.Context, subscriberID, channelID string) error

	ListSubscribers(ctx context.Context, channelID string) ([]domain.ChannelSummary, error)

	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.ChannelSummary, error)
}
