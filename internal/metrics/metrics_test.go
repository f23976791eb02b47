package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveNotification(t *testing.T) {
	before := testutil.ToFloat64(notificationsTotal.WithLabelValues(ResultSuccess))

	ObserveNotification(ResultSuccess)

	assert.Equal(t, before+1, testutil.ToFloat64(notificationsTotal.WithLabelValues(ResultSuccess)))
}

func TestObserveReportError(t *testing.T) {
	before := testutil.ToFloat64(reportErrorsTotal)

	ObserveReportError()

	assert.Equal(t, before+1, testutil.ToFloat64(reportErrorsTotal))
}

func TestMiddleware_CountsRequests(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "boom")
	})

	okBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "200"))
	errBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "418"))

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "200")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "418")))
}

func TestNewApp_ServesMetrics(t *testing.T) {
	ObserveNotification(ResultFailure)
	ObserveRender(5 * time.Millisecond)

	resp, err := NewApp().Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `order_notifications_total{result="failure"}`)
	assert.Contains(t, string(body), "order_notification_render_duration_seconds_bucket")
}
