package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/skycast/frontend/web"
)

// Options configures the fiber application
type Options struct {
	AppName      string
	SecureCookie bool
	AccessLog    bool
	Logger       *slog.Logger
}

// NewServer builds the fiber app with views, middleware and routes
func NewServer(weather WeatherLookup, opts Options) *fiber.App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.AppName == "" {
		opts.AppName = "Weather Frontend v1.0"
	}

	engine := html.NewFileSystem(http.FS(web.Templates()), ".html")

	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		Views:        engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: errorHandler(opts.Logger),
	})

	// Middleware
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
		}))
	}
	app.Use(helmet.New(helmet.Config{
		// provider icons are loaded cross-origin
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))

	flash := NewFlash(NewSessionStore(opts.SecureCookie))
	SetupRoutes(app, weather, flash, opts.Logger)

	return app
}

// errorHandler renders unexpected errors as an HTML page
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		} else {
			log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}

		c.Status(code)
		if renderErr := c.Render("error", fiber.Map{
			"Title":   message,
			"Message": message,
		}, layout); renderErr != nil {
			return c.SendString(message)
		}
		return nil
	}
}
