package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	pkgkafka "github.com/shubhajit-paul-web/youtube-fullstack/pkg/kafka"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/logger"
)

// Kafka topic constants for domain events.
const (
	TopicUserRegistered = "videotube.user.registered"
	TopicVideoPublished = "videotube.video.published"
	TopicVideoDeleted   = "videotube.video.deleted"
)

// Aggregate type constants.
const (
	AggregateTypeUser  = "user"
	AggregateTypeVideo = "video"
)

// Source identifier for events originating from this API.
const Source = "videotube-api"

// UserRegisteredData is the payload for a user.registered event.
type UserRegisteredData struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// VideoPublishedData is the payload for a video.published event.
type VideoPublishedData struct {
	ID       string  `json:"id"`
	OwnerID  string  `json:"owner_id"`
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
}

// VideoDeletedData is the payload for a video.deleted event.
type VideoDeletedData struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

// Producer publishes domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishUserRegistered publishes a user.registered event.
func (p *Producer) PublishUserRegistered(ctx context.Context, user *domain.User) error {
	data := UserRegisteredData{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	event, err := pkgkafka.NewEvent(TopicUserRegistered, user.ID, AggregateTypeUser, Source, data)
	if err != nil {
		return fmt.Errorf("create user.registered event: %w", err)
	}
	event.WithRequestID(logger.RequestIDFromContext(ctx))

	if err := p.kafka.Publish(ctx, TopicUserRegistered, event); err != nil {
		return fmt.Errorf("publish user.registered event: %w", err)
	}

	p.logger.DebugContext(ctx, "published user.registered event",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return nil
}

// PublishVideoPublished publishes a video.published event.
func (p *Producer) PublishVideoPublished(ctx context.Context, video *domain.Video) error {
	data := VideoPublishedData{
		ID:       video.ID,
		OwnerID:  video.OwnerID,
		Title:    video.Title,
		Duration: video.Duration,
	}

	event, err := pkgkafka.NewEvent(TopicVideoPublished, video.ID, AggregateTypeVideo, Source, data)
	if err != nil {
		return fmt.Errorf("create video.published event: %w", err)
	}
	event.WithRequestID(logger.RequestIDFromContext(ctx))

	if err := p.kafka.Publish(ctx, TopicVideoPublished, event); err != nil {
		return fmt.Errorf("publish video.published event: %w", err)
	}

	p.logger.DebugContext(ctx, "published video.published event",
		slog.String("video_id", video.ID),
		slog.String("owner_id", video.OwnerID),
	)

	return nil
}

// PublishVideoDeleted publishes a video.deleted event.
func (p *Producer) PublishVideoDeleted(ctx context.Context, video *domain.Video) error {
	data := VideoDeletedData{
		ID:      video.ID,
		OwnerID: video.OwnerID,
	}

	event, err := pkgkafka.NewEvent(TopicVideoDeleted, video.ID, AggregateTypeVideo, Source, data)
	if err != nil {
		return fmt.Errorf("create video.deleted event: %w", err)
	}
	event.WithRequestID(logger.RequestIDFromContext(ctx))

	if err := p.kafka.Publish(ctx, TopicVideoDeleted, event); err != nil {
		return fmt.Errorf("publish video.deleted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published video.deleted event",
		slog.String("video_id", video.ID),
		slog.String("owner_id", video.OwnerID),
	)

	return nil
}
