package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"ecommerce/internal/config"
)

const (
	bypassHeader      = "X-Rate-Limit-Bypass"
	retryAfterSeconds = 1
)

var (
	errTooManyRequests = map[string]string{"message": "Too many requests"}
	errLimiterFailed   = map[string]string{"message": "Server error"}
)

// RateLimit limits requests per client IP. Requests to exempt paths (the
// metrics endpoint, health checks) and requests carrying the bypass secret are
// never limited.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger, exempt ...string) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if slices.Contains(exempt, c.Path()) {
				return true
			}
			if len(secret) == 0 {
				return false
			}
			provided := c.Request().Header.Get(bypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("route", c.Path()),
			)
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
			return c.JSON(http.StatusTooManyRequests, errTooManyRequests)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, errLimiterFailed)
		},
	})
}
