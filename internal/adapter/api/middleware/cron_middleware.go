package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CronMiddleware guards the auto-sync sweep endpoint. The external cron
// trigger authenticates with a shared key instead of a user token.
type CronMiddleware struct {
	secret string
}

func NewCronMiddleware(secret string) *CronMiddleware {
	return &CronMiddleware{
		secret: secret,
	}
}

func (m *CronMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.secret == "" {
			return echo.NewHTTPError(http.StatusForbidden, "Cron endpoint is not configured")
		}

		key := c.Request().Header.Get("X-Cron-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.secret)) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid cron key")
		}

		return next(c)
	}
}
