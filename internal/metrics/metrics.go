package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"method", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration", Buckets: prometheus.DefBuckets},
		[]string{"method"},
	)
	notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "order_notifications_total", Help: "Order notifications processed, by result"},
		[]string{"result"},
	)
	renderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "order_notification_render_duration_seconds", Help: "Time spent decoding and rendering an order notification", Buckets: prometheus.DefBuckets},
	)
	reportErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "order_notification_report_errors_total", Help: "Failures while reporting an assembled notification"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, notificationsTotal, renderDuration, reportErrorsTotal)
}

func ObserveNotification(result string) {
	notificationsTotal.WithLabelValues(result).Inc()
}

func ObserveRender(d time.Duration) {
	renderDuration.Observe(d.Seconds())
}

func ObserveReportError() {
	reportErrorsTotal.Inc()
}

// Middleware records request counts and latency. The path is left out of the
// labels because every path is served by the same handler.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		httpRequestsTotal.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(c.Method()).Observe(time.Since(start).Seconds())
		return err
	}
}

// NewApp returns the app serving /metrics on its own listener.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	return app
}
