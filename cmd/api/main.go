package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clothing-store/internal/auth"
	"clothing-store/internal/cache"
	"clothing-store/internal/config"
	"clothing-store/internal/database"
	"clothing-store/internal/handler"
	"clothing-store/internal/model"
	"clothing-store/internal/repository"
	"clothing-store/internal/router"
	"clothing-store/internal/service"
	"clothing-store/internal/upload"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting clothing store API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)

	// Initialize token issuer
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)

	// Initialize image uploader with S3 and local fallback
	var uploader upload.Uploader
	if cfg.Upload.S3Enabled {
		s3Uploader, err := upload.NewS3Uploader(ctx, cfg.Upload.S3Bucket, cfg.Upload.S3Region, cfg.Upload.S3Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 uploader, falling back to local storage")
		} else {
			uploader = s3Uploader
		}
	}
	if uploader == nil {
		localUploader, err := upload.NewLocalUploader(cfg.Upload.Dir, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize local uploader: %w", err)
		}
		uploader = localUploader
		logger.Info().Str("dir", cfg.Upload.Dir).Msg("using local storage for images")
	}

	// Initialize services
	productListCache := cache.New[[]model.Product]()
	productService := service.NewProductService(productRepo, productListCache, logger)
	cartService := service.NewCartService(cartRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	userService := service.NewUserService(userRepo, tokens, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	authHandler := handler.NewAuthHandler(userService, logger)
	uploadHandler := handler.NewUploadHandler(uploader, cfg.Upload.MaxSize, logger)

	// Initialize router
	mux := router.New(router.Config{
		Products:  productHandler,
		Cart:      cartHandler,
		Orders:    orderHandler,
		Auth:      authHandler,
		Uploads:   uploadHandler,
		Tokens:    tokens,
		UploadDir: cfg.Upload.Dir,
		Logger:    logger,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
