// Package http wires the REST API: routing, request decoding, and response
// shaping. Business rules live in internal/service.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/health"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/middleware"
)

// serviceName labels metrics and traces emitted by this API.
const serviceName = "videotube-api"

// RouterConfig carries everything the router needs beyond the handlers.
type RouterConfig struct {
	Logger         *slog.Logger
	Authenticate   middleware.Authenticator
	Health         *health.Handler
	CORS           middleware.CORSConfig
	AuthLimiter    *middleware.RateLimiter
	TracingEnabled bool
}

// Handlers groups the per-resource HTTP handlers.
type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Video        *VideoHandler
	Comment      *CommentHandler
	Tweet        *TweetHandler
	Like         *LikeHandler
	Playlist     *PlaylistHandler
	Subscription *SubscriptionHandler
}

// NewRouter assembles the chi router with the full middleware stack and all
// API routes.
func NewRouter(cfg RouterConfig, h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	if cfg.TracingEnabled {
		r.Use(middleware.Tracing(serviceName))
	}

	requireAuth := middleware.Auth(cfg.Authenticate)
	optionalAuth := middleware.OptionalAuth(cfg.Authenticate)

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// Credential endpoints are the brute-force surface.
			r.Group(func(r chi.Router) {
				r.Use(cfg.AuthLimiter.Middleware())
				r.Post("/register", h.Auth.Register)
				r.Post("/login", h.Auth.Login)
				r.Post("/refresh", h.Auth.Refresh)
			})
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/logout", h.Auth.Logout)
				r.Patch("/change-password", h.Auth.ChangePassword)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/me", h.User.Me)
				r.Patch("/me", h.User.UpdateMe)
				r.Patch("/me/avatar", h.User.UpdateAvatar)
				r.Patch("/me/cover-image", h.User.UpdateCoverImage)
				r.Get("/me/watch-history", h.User.WatchHistory)
			})
			r.With(optionalAuth).Get("/c/{username}", h.User.Channel)
		})

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", h.Video.List)
			r.With(optionalAuth).Get("/{id}", h.Video.Get)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", h.Video.Publish)
				r.Patch("/{id}", h.Video.Update)
				r.Delete("/{id}", h.Video.Delete)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/{targetType}/{targetId}", h.Comment.List)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/{targetType}/{targetId}", h.Comment.Create)
				r.Patch("/{id}", h.Comment.Update)
				r.Delete("/{id}", h.Comment.Delete)
			})
		})

		r.Route("/likes", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/{targetType}/{targetId}", h.Like.Toggle)
			r.Get("/videos", h.Like.LikedVideos)
		})

		r.Route("/tweets", func(r chi.Router) {
			r.Get("/{channelId}", h.Tweet.ListByChannel)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", h.Tweet.Create)
				r.Patch("/{id}", h.Tweet.Update)
				r.Delete("/{id}", h.Tweet.Delete)
			})
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Get("/{id}", h.Playlist.Get)
			r.Get("/user/{userId}", h.Playlist.ListByUser)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", h.Playlist.Create)
				r.Patch("/{id}", h.Playlist.Update)
				r.Delete("/{id}", h.Playlist.Delete)
				r.Post("/{playlistId}/videos/{videoId}", h.Playlist.AddVideo)
				r.Delete("/{playlistId}/videos/{videoId}", h.Playlist.RemoveVideo)
			})
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/c/{channelId}", h.Subscription.Subscribers)
			r.Get("/u/{channelId}", h.Subscription.SubscribedChannels)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/c/{channelId}", h.Subscription.Subscribe)
				r.Delete("/c/{channelId}", h.Subscription.Unsubscribe)
			})
		})
	})

	return r
}
