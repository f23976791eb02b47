package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kagit-online/order-notification/internal/config"
	"github.com/kagit-online/order-notification/internal/handlers"
	"github.com/kagit-online/order-notification/internal/metrics"
	"github.com/kagit-online/order-notification/internal/models"
	"github.com/kagit-online/order-notification/internal/notify"
)

const unknownError = "Unknown error"

// Cross-origin headers sent on every response.
var corsHeaders = [][2]string{
	{fiber.HeaderAccessControlAllowOrigin, "*"},
	{fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS"},
	{fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization, X-Client-Info, Apikey"},
}

type Server struct {
	app      *fiber.App
	cfg      *config.Config
	logger   *slog.Logger
	reporter notify.Reporter
}

func NewServer(cfg *config.Config, log *slog.Logger, reporter notify.Reporter) *Server {
	if log == nil {
		log = slog.Default()
	}
	if reporter == nil {
		reporter = notify.NewLogReporter(log)
	}

	server := &Server{
		cfg:      cfg,
		logger:   log,
		reporter: reporter,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: server.handleError,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status}\n",
	}))
	app.Use(metrics.Middleware())
	app.Use(withCORSHeaders)

	server.app = app

	// Routes
	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	s.app.Options("/*", s.handlePreflight)
	s.app.All("/*", s.handleOrderNotification)
}

func (s *Server) Start() error {
	return s.app.Listen(s.cfg.Server.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func withCORSHeaders(c *fiber.Ctx) error {
	setCORSHeaders(c)
	return c.Next()
}

func setCORSHeaders(c *fiber.Ctx) {
	for _, h := range corsHeaders {
		c.Set(h[0], h[1])
	}
}

// handlePreflight answers CORS pre-flight probes without reading the body.
func (s *Server) handlePreflight(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).Send(nil)
}

func (s *Server) handleOrderNotification(c *fiber.Ctx) error {
	start := time.Now()
	payload, err := handlers.BuildOrderNotification(c.Body(), s.cfg.Notification)
	metrics.ObserveRender(time.Since(start))
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.reporter.Report(c.UserContext(), payload); err != nil {
		s.logger.Error("Failed to report order notification", "error", err)
		metrics.ObserveReportError()
	}

	metrics.ObserveNotification(metrics.ResultSuccess)
	return c.JSON(models.NotificationResponse{
		Success: true,
		Message: models.NotificationSentMessage,
		Data:    payload,
	})
}

// handleError turns anything escaping a handler, panics included, into the
// standard failure response.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	setCORSHeaders(c)
	return s.fail(c, err)
}

func (s *Server) fail(c *fiber.Ctx, err error) error {
	s.logger.Error("Error processing order notification", "error", err)
	metrics.ObserveNotification(metrics.ResultFailure)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Success: false,
		Error:   errorMessage(err),
	})
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return unknownError
	}
	return err.Error()
}
