package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"

	"reelcritic/database"
	"reelcritic/internal/api/handler"
	"reelcritic/internal/api/middleware"
	"reelcritic/internal/api/repository"
	"reelcritic/internal/api/service"
	"reelcritic/internal/cache"
	"reelcritic/internal/config"
	"reelcritic/internal/metadata"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// 2. Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Raw connection for the leaderboard queries
	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("raw database connection failed", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	// 3. Connect to Redis
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	sessions := cache.NewSessionStore(redisClient, cfg.SessionTTL)
	likes := cache.NewLikeStore(redisClient)

	// 4. External metadata provider
	metadataClient := metadata.NewClient(cfg.MetadataAPIURL, cfg.MetadataAPIKey, cfg.MetadataAPIHost)

	// 5. Repositories
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	postRepo := repository.NewPostRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	followRepo := repository.NewFollowRepository(db)
	criticRepo := repository.NewCriticRepository(sqlDB)

	// 6. Services
	authService := service.NewAuthService(userRepo, sessions, cfg)
	userService := service.NewUserService(userRepo, followRepo, sessions)
	movieService := service.NewMovieService(movieRepo, metadataClient, likes)
	reviewService := service.NewReviewService(reviewRepo, commentRepo, userRepo, movieRepo)
	feedService := service.NewFeedService(postRepo, storyRepo, movieRepo, commentRepo, userRepo, likes)
	criticService := service.NewCriticService(criticRepo, userRepo, followRepo)

	// 7. Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	feedHandler := handler.NewFeedHandler(feedService)
	criticHandler := handler.NewCriticHandler(criticService)

	// Refresh the critic leaderboard on startup and then hourly
	go refreshLeaderboard(criticService, logger)

	// 8. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "API is alive and database connected",
		})
	})

	api := r.Group("/api")

	// Public routes carry an optional viewer identity so responses can
	// include viewer-relative fields like isFollowing.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(authService))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	authHandler.RegisterRoutes(public.Group("/auth"), protected.Group("/auth"))
	userHandler.RegisterRoutes(public.Group("/users"), protected.Group("/users"))

	publicMovies := public.Group("/movies")
	movieHandler.RegisterRoutes(publicMovies, protected.Group("/movies"))
	reviewHandler.RegisterRoutes(public.Group("/reviews"), protected.Group("/reviews"), publicMovies)

	feedHandler.RegisterRoutes(public, protected)
	criticHandler.RegisterRoutes(public.Group("/critics"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func refreshLeaderboard(criticService service.CriticService, logger *slog.Logger) {
	recompute := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := criticService.RecomputeRankings(ctx); err != nil {
			logger.Warn("leaderboard refresh failed", "error", err)
		}
	}

	recompute()
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		recompute()
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
