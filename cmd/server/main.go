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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkonnov/myblog/internal/config"
	"github.com/pkonnov/myblog/internal/handler"
	"github.com/pkonnov/myblog/internal/infrastructure/database"
	"github.com/pkonnov/myblog/internal/logger"
	"github.com/pkonnov/myblog/internal/metrics"
	"github.com/pkonnov/myblog/internal/middleware"
	"github.com/pkonnov/myblog/internal/repository"
	"github.com/pkonnov/myblog/internal/service"
	"github.com/pkonnov/myblog/internal/validator"
)

func main() {
	// A .env file is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	dbCfg := database.PoolConfig{
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

	if cfg.DBMigrate {
		if err := database.Migrate(dbCfg, "migrations"); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}
		logger.Info("Migrations applied")
	}

	pool, err := database.NewPostgres(context.Background(), dbCfg)
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
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo, commentRepo, categoryRepo, userRepo, v)
	commentService := service.NewCommentService(commentRepo, articleRepo, v)
	categoryService := service.NewCategoryService(categoryRepo, v)
	feedService := service.NewFeedService(articleRepo, service.FeedConfig{
		Title:       cfg.FeedTitle,
		Link:        cfg.FeedLink,
		Description: cfg.FeedDescription,
		Items:       cfg.FeedItems,
	})

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	feedHandler := handler.NewFeedHandler(feedService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(middleware.Viewer([]byte(cfg.AuthJWTSecret)))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/feed", feedHandler.Get)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.ListAll)
			articles.GET("/search", articleHandler.Search)
			articles.GET("/archive/:year/:month/:day", articleHandler.ListByDate)
			articles.GET("/:id", articleHandler.Get)
			articles.POST("/:id/comments", commentHandler.Create)

			articles.POST("", middleware.RequireViewer(), articleHandler.Create)
			articles.PUT("/:id", middleware.RequireViewer(), articleHandler.Update)
			articles.DELETE("/:id", middleware.RequireViewer(), articleHandler.Delete)
			articles.POST("/:id/publish", middleware.RequireViewer(), articleHandler.Publish)
		}

		v1.GET("/drafts", middleware.RequireViewer(), articleHandler.ListDrafts)

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:slug/articles", articleHandler.ListByCategory)
			categories.POST("", middleware.RequireViewer(), categoryHandler.Create)
		}

		v1.GET("/authors/:username/articles", articleHandler.ListByAuthor)

		comments := v1.Group("/comments", middleware.RequireViewer())
		{
			comments.POST("/:id/approve", commentHandler.Approve)
			comments.DELETE("/:id", commentHandler.Delete)
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
