package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/skycast/frontend/internal/config"
	"github.com/skycast/frontend/internal/delivery/http"
	"github.com/skycast/frontend/internal/service"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if envErr != nil {
		logger.Info("no .env file found, using system environment")
	}

	// The server still starts without a key; lookups then fail with a provider error.
	if !cfg.HasAPIKey() {
		logger.Warn("OPENWEATHER_API_KEY not set, set it in .env or environment variables")
	}

	weatherSvc := service.NewWeatherService(cfg.OpenWeather.APIKey, cfg.OpenWeather.BaseURL)

	app := http.NewServer(weatherSvc, http.Options{
		SecureCookie: cfg.IsProduction(),
		AccessLog:    true,
		Logger:       logger,
	})

	// Graceful shutdown
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("starting server", "addr", addr, "env", cfg.Server.Env)
		if err := app.Listen(addr); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server exited gracefully")
}
