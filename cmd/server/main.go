package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-platform/internal/auth"
	"blog-platform/internal/config"
	"blog-platform/internal/handler"
	"blog-platform/internal/infrastructure/database"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
	"blog-platform/internal/middleware"
	"blog-platform/internal/repository"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	// Apply pending schema migrations before taking traffic
	if cfg.MigrationsDir != "" {
		if err := database.RunMigrations(poolCfg, cfg.MigrationsDir); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	voteRepo := repository.NewPostgresVoteRepository(pool)

	// Initialize validator and file storage
	v := validator.NewValidator()
	assets, err := service.NewAssetStore(cfg.CoverImageDir, cfg.BodyImageDir, cfg.AvatarDir, cfg.UploadMaxBytes)
	if err != nil {
		logger.Fatal("Failed to create asset store",
			slog.String("error", err.Error()))
	}
	if err := os.MkdirAll(cfg.TmpDir, 0o755); err != nil {
		logger.Fatal("Failed to create upload temp dir",
			slog.String("error", err.Error()))
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize services
	articleService := service.NewArticleService(articleRepo, commentRepo, voteRepo, assets, v)
	voteService := service.NewVoteService(articleRepo, voteRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo, v)
	userService := service.NewUserService(userRepo, assets, tokens, v)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, voteService, userService, cfg.TmpDir)
	commentHandler := handler.NewCommentHandler(commentService, articleService, userService)
	userHandler := handler.NewUserHandler(userService, cfg.TmpDir)
	tagHandler := handler.NewTagHandler(articleService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded images are served straight from disk
	router.Static("/public/upload", cfg.UploadRootDir)

	authRequired := middleware.AuthRequired(tokens)
	authOptional := middleware.AuthOptional(tokens)

	api := router.Group("/api")
	{
		api.POST("/users", userHandler.Register)
		api.POST("/users/login", userHandler.Login)
		api.GET("/user", authRequired, userHandler.Current)
		api.PUT("/user", authRequired, userHandler.Update)

		api.GET("/tags", tagHandler.List)

		articles := api.Group("/articles")
		{
			articles.GET("", authOptional, articleHandler.List)
			articles.POST("", authRequired, articleHandler.Create)
			articles.GET("/:slug", authOptional, articleHandler.Get)
			articles.PUT("/:slug", authRequired, articleHandler.Update)
			articles.DELETE("/:slug", authRequired, articleHandler.Delete)

			articles.PUT("/:slug/imgs", authRequired, articleHandler.UploadBodyImage)

			articles.POST("/:slug/upvote", authRequired, articleHandler.Upvote)
			articles.DELETE("/:slug/upvote", authRequired, articleHandler.CancelUpvote)
			articles.POST("/:slug/downvote", authRequired, articleHandler.Downvote)
			articles.DELETE("/:slug/downvote", authRequired, articleHandler.CancelDownvote)

			articles.GET("/:slug/comments", commentHandler.List)
			articles.POST("/:slug/comments", authRequired, commentHandler.Create)
			articles.DELETE("/:slug/comments/:id", authRequired, commentHandler.Delete)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
