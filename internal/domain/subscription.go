package domain

import "time"

// Subscription records that subscriber_id follows channel_id. The pair is
// unique; self-subscriptions are rejected at the service layer.
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber_id"`
	ChannelID    string    `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChannelSummary is the public slice of a user shown in subscriber and
// subscription listings.
type ChannelSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}
