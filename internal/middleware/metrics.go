package middleware

//go:generate go tool mockery

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"ecommerce/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

const unmatchedKey = "metrics.unmatched"

// MarkUnmatched tags requests served by the catch-all RouteNotFound handler
// so they are labelled metrics.UnmatchedRoute instead of the catch-all path.
func MarkUnmatched(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(unmatchedKey, true)
		return next(c)
	}
}

// Metrics records request count and duration once the final status is
// committed. Recording problems are logged and never reach the client.
func Metrics(recorder HTTPRecorder, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()
			obs := metrics.StartRequest(recorder, req.Method, req.URL.Path)

			defer func() {
				if r := recover(); r != nil {
					finish(c, obs, http.StatusInternalServerError, logger)
					panic(r)
				}
				finish(c, obs, c.Response().Status, logger)
			}()

			err = next(c)
			if err != nil {
				// Let the global error handler commit the status before we read it.
				// It ignores the error when it bubbles up again.
				c.Error(err)
			}
			return err
		}
	}
}

func finish(c echo.Context, obs *metrics.RequestObservation, status int, logger *slog.Logger) {
	route := c.Path()
	if unmatched, _ := c.Get(unmatchedKey).(bool); unmatched {
		route = ""
	}
	if err := obs.Finish(route, status); err != nil {
		logger.Warn("dropping request metric",
			slog.String("path", obs.Path()),
			slog.String("error", err.Error()))
	}
}
