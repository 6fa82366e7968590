package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alireza01sjd/project-god-mode/database"
	"github.com/Alireza01sjd/project-god-mode/internal/api/handler"
	"github.com/Alireza01sjd/project-god-mode/internal/api/middleware"
	"github.com/Alireza01sjd/project-god-mode/internal/api/repository"
	"github.com/Alireza01sjd/project-god-mode/internal/api/service"
	"github.com/Alireza01sjd/project-god-mode/internal/cache"
	"github.com/Alireza01sjd/project-god-mode/internal/config"
	"github.com/Alireza01sjd/project-god-mode/internal/scheduler"
)

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
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}

func main() {
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

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	// Redis is optional; without it progress reads always hit Postgres.
	progressCache := cache.NewNoopProgressCache()
	if cfg.RedisAddr != "" {
		progressCache, err = cache.NewProgressCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			logger.Warn("Redis unavailable, progress cache disabled", "error", err)
			progressCache = cache.NewNoopProgressCache()
		} else {
			defer progressCache.Close()
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	authorRepo := repository.NewAuthorRepository(db)
	bookRepo := repository.NewBookRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo)
	authorService := service.NewAuthorService(authorRepo)
	bookService := service.NewBookService(bookRepo, authorRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	tagService := service.NewTagService(tagRepo)
	progressService := service.NewProgressService(progressRepo, bookRepo, progressCache)
	sessionService := service.NewSessionService(sessionRepo, bookRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authorHandler := handler.NewAuthorHandler(authorService)
	bookHandler := handler.NewBookHandler(bookService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	tagHandler := handler.NewTagHandler(tagService)
	progressHandler := handler.NewProgressHandler(progressService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Auth endpoints are unauthenticated and rate limited per IP.
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	authRoutes := api.Group("/auth")
	authRoutes.Use(limiter.Middleware())
	authHandler.RegisterRoutes(authRoutes)

	// Everything else requires a valid access token.
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	userHandler.RegisterRoutes(protected.Group("/users"))
	authorHandler.RegisterRoutes(protected.Group("/authors"))
	bookHandler.RegisterRoutes(protected.Group("/books"))
	categoryHandler.RegisterRoutes(protected.Group("/categories"))
	tagHandler.RegisterRoutes(protected.Group("/tags"))
	progressHandler.RegisterRoutes(protected.Group("/progress"))
	sessionHandler.RegisterRoutes(protected.Group("/sessions"))

	cleanup := scheduler.NewTokenCleanup(refreshTokenRepo, logger)
	if err := cleanup.Start(); err != nil {
		logger.Error("Failed to start token cleanup", "error", err)
		os.Exit(1)
	}
	defer cleanup.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
