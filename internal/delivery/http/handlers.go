package http

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/skycast/frontend/internal/domain"
)

const layout = "layouts/main"

// WeatherLookup resolves a city name to current conditions
type WeatherLookup interface {
	Lookup(ctx context.Context, city string) (domain.WeatherView, error)
}

// Handler contains all HTTP handlers
type Handler struct {
	weather WeatherLookup
	flash   *Flash
	logger  *slog.Logger
}

// NewHandler creates a new handler
func NewHandler(weather WeatherLookup, flash *Flash, logger *slog.Logger) *Handler {
	return &Handler{
		weather: weather,
		flash:   flash,
		logger:  logger,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "weather-frontend",
		"version": "1.0.0",
	})
}

// Home renders the city form along with any pending notices
func (h *Handler) Home(c *fiber.Ctx) error {
	notices, err := h.flash.Pop(c)
	if err != nil {
		h.logger.Error("failed to read notices", "error", err)
	}

	return c.Render("home", fiber.Map{
		"Title":   "Home",
		"Notices": notices,
	}, layout)
}

// About renders the informational page
func (h *Handler) About(c *fiber.Ctx) error {
	return c.Render("about", fiber.Map{
		"Title": "About",
	}, layout)
}

// LookupWeather handles the city form. Every failure becomes a notice and
// a redirect back to the form.
func (h *Handler) LookupWeather(c *fiber.Ctx) error {
	city := c.FormValue("city")

	view, err := h.weather.Lookup(c.Context(), city)
	if err != nil {
		return h.redirectWithNotice(c, city, err)
	}

	return c.Render("weather", fiber.Map{
		"Title":   view.Location(),
		"Weather": view,
	}, layout)
}

// RedirectHome sends direct visits of the lookup URL back to the form
func (h *Handler) RedirectHome(c *fiber.Ctx) error {
	return c.Redirect("/")
}

func (h *Handler) redirectWithNotice(c *fiber.Ctx, city string, err error) error {
	if errors.Is(err, domain.ErrEmptyInput) {
		h.logger.Debug("rejected empty city")
	} else {
		h.logger.Warn("weather lookup failed", "city", city, "error", err)
	}

	if pushErr := h.flash.Push(c, domain.NoticeFor(err)); pushErr != nil {
		h.logger.Error("failed to store notice", "error", pushErr)
	}

	return c.Redirect("/")
}
