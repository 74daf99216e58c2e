package http

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/skycast/frontend/web"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, weather WeatherLookup, flash *Flash, logger *slog.Logger) {
	handler := NewHandler(weather, flash, logger)

	// Health check
	app.Get("/health", handler.HealthCheck)

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))

	app.Get("/", handler.Home)
	app.Get("/about", handler.About)

	app.Post("/weather", handler.LookupWeather)
	app.Get("/weather", handler.RedirectHome)
}
