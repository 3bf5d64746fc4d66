package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"bookmarkpage/internal/app"
	"bookmarkpage/internal/config"
	"bookmarkpage/internal/models"
	"bookmarkpage/internal/routes"
)

func main() {
	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	cfg := config.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg(models.LogServerStartFailed)
	}

	r := routes.SetupRoutes(application)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Msg("Server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg(models.LogServerStartFailed)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}

	if err := application.Close(); err != nil {
		logger.Error().Err(err).Msg("Failed to close database")
	}
}
