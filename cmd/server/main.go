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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"techstore/internal/auth"
	"techstore/internal/config"
	"techstore/internal/database"
	"techstore/internal/handlers"
	"techstore/internal/notification"
	"techstore/internal/realtime"
	"techstore/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	store := database.NewGormStore(db)
	authService := auth.NewService(cfg.Auth)

	if err := seedAdmin(store, authService); err != nil {
		return fmt.Errorf("admin seed failed: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	sessions := auth.NewRedisSessionStore(redisClient)

	notifier := notification.NewManager(cfg.Notifications, cfg.Debug, logger)
	notifier.Start()
	defer notifier.Stop()

	aggregator := stats.NewAggregator(logger)
	hub := realtime.NewHub(logger)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler := handlers.NewHandler(cfg, logger, store, authService, sessions, aggregator, notifier, hub)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server started", "port", cfg.Server.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// seedAdmin creates the default administrator account if no user with the
// admin email exists yet.
func seedAdmin(store database.Store, authService *auth.Service) error {
	ctx := context.Background()
	const adminEmail = "admin@techstore.al"

	_, err := store.UserByEmail(ctx, adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return err
	}

	passwordHash, err := authService.HashPassword("admin123")
	if err != nil {
		return err
	}

	return store.CreateUser(ctx, &database.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Role:         database.RoleAdmin,
		Language:     "sq",
		IsActive:     true,
	})
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
