package domain

import "time"

// User represents a registered user. Every user is also a channel: videos,
// tweets, and subscriptions hang off the same identity.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	AvatarURL     string    `json:"avatar_url"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	// RefreshToken is the single active refresh-token slot. nil means no
	// live session; it is overwritten on login/refresh and cleared on logout.
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenPair holds an access and refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ChannelProfile is a user's public channel page: profile fields plus
// subscription aggregates relative to the requesting viewer.
type ChannelProfile struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	AvatarURL       string    `json:"avatar_url"`
	CoverImageURL   string    `json:"cover_image_url,omitempty"`
	SubscriberCount int       `json:"subscriber_count"`
	SubscribedTo    int       `json:"subscribed_to_count"`
	IsSubscribed    bool      `json:"is_subscribed"`
	CreatedAt       time.Time `json:"created_at"`
}

// WatchEntry is one row of a user's watch history.
type WatchEntry struct {
	Video     Video     `json:"video"`
	WatchedAt time.Time `json:"watched_at"`
}
