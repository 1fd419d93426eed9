// Package app wires together all dependencies and runs the API server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/auth"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/config"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/event"
	handler "github.com/shubhajit-paul-web/youtube-fullstack/internal/handler/http"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/migrations"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository/postgres"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/service"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage/memory"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage/s3"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/views"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/database"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/health"
	pkgkafka "github.com/shubhajit-paul-web/youtube-fullstack/pkg/kafka"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/middleware"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/tracing"
)

// App wires together all dependencies and runs the API server.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	pool           *pgxpool.Pool
	redisClient    *redis.Client
	producer       *pkgkafka.Producer
	httpServer     *http.Server
	authLimiter    *middleware.RateLimiter
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "videotube-api",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     cfg.TracingSampleRate,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Initialize PostgreSQL connection pool.
	pool, err := database.NewPostgresPool(ctx, cfg.Postgres(), logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL",
		slog.String("host", cfg.PostgresHost),
		slog.Int("port", cfg.PostgresPort),
		slog.String("database", cfg.PostgresDB),
	)
	database.RegisterPoolMetrics(pool, "videotube-api")

	// Run database migrations.
	if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("database migrations completed")

	if cfg.SlowQueryThreshold > 0 {
		database.SetSlowQueryLogging(cfg.SlowQueryThreshold, logger)
	}

	// Redis backs view-count deduplication; the service degrades to counting
	// every fetch when it is disabled.
	var (
		redisClient *redis.Client
		viewCounter *views.Counter
	)
	if cfg.RedisEnabled {
		redisClient, err = database.NewRedisClient(ctx, cfg.Redis())
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		viewCounter = views.NewCounter(redisClient, cfg.ViewWindow)
		logger.Info("connected to Redis",
			slog.String("host", cfg.RedisHost),
			slog.Int("port", cfg.RedisPort),
		)
	}

	// Kafka producer for domain events; optional.
	var (
		producer      *pkgkafka.Producer
		eventProducer *event.Producer
	)
	if cfg.KafkaEnabled {
		producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		eventProducer = event.NewProducer(producer, logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	}

	// Object storage for video files and profile images.
	var store storage.Storage
	switch cfg.StorageBackend {
	case "memory":
		store = memory.New(cfg.S3PublicURL)
	default:
		store, err = s3.New(ctx, s3.Config{
			Endpoint:     cfg.S3Endpoint,
			PublicURL:    cfg.S3PublicURL,
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			UsePathStyle: cfg.S3UsePathStyle,
		})
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("init object storage: %w", err)
		}
	}

	// Build the dependency graph.
	jwtManager := auth.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	userRepo := postgres.NewUserRepository(pool)
	videoRepo := postgres.NewVideoRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	tweetRepo := postgres.NewTweetRepository(pool)
	likeRepo := postgres.NewLikeRepository(pool)
	playlistRepo := postgres.NewPlaylistRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)

	authService := service.NewAuthService(userRepo, jwtManager, store, eventProducer, logger)
	userService := service.NewUserService(userRepo, store, logger)
	videoService := service.NewVideoService(videoRepo, userRepo, store, viewCounter, eventProducer, logger)
	commentService := service.NewCommentService(commentRepo, videoRepo, tweetRepo, logger)
	tweetService := service.NewTweetService(tweetRepo, userRepo, logger)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo, logger)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo, logger)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.RegisterCritical("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	if redisClient != nil {
		healthHandler.RegisterNonCritical("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	if producer != nil {
		healthHandler.RegisterNonCritical("kafka", func(ctx context.Context) error {
			return producer.Ping(ctx)
		})
	}

	// HTTP router.
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst, logger)
	cookies := handler.CookieConfig{
		Secure:        cfg.CookieSecure,
		AccessMaxAge:  cfg.JWTAccessExpiry,
		RefreshMaxAge: cfg.JWTRefreshExpiry,
	}
	router := handler.NewRouter(handler.RouterConfig{
		Logger:       logger,
		Authenticate: authService.Authenticate,
		Health:       healthHandler,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Environment:    cfg.Environment,
		},
		AuthLimiter:    authLimiter,
		TracingEnabled: cfg.TracingEnabled,
	}, handler.Handlers{
		Auth:         handler.NewAuthHandler(authService, cookies, logger),
		User:         handler.NewUserHandler(userService, logger),
		Video:        handler.NewVideoHandler(videoService, logger),
		Comment:      handler.NewCommentHandler(commentService, logger),
		Tweet:        handler.NewTweetHandler(tweetService, logger),
		Like:         handler.NewLikeHandler(likeService, logger),
		Playlist:     handler.NewPlaylistHandler(playlistService, logger),
		Subscription: handler.NewSubscriptionHandler(subscriptionService, logger),
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		pool:           pool,
		redisClient:    redisClient,
		producer:       producer,
		httpServer:     httpServer,
		authLimiter:    authLimiter,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components in order: HTTP server first so
// in-flight requests drain, then the tracer so their spans flush, then the
// producer and stores.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	a.authLimiter.Stop()

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.pool.Close()

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
