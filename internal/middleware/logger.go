package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RequestLogger tags every request with an ID, scopes a zerolog logger to it
// through the request context, and emits one summary line per request. An
// inbound X-Request-ID is kept so a request can be correlated with the
// frontend's logs; otherwise a fresh one is minted here. The ID goes back out
// on the response either way.
func RequestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestID := c.Request().Header.Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		err := next(c)

		logger.Info().
			Str("method", c.Request().Method).
			Str("route", c.Path()).
			Str("remote_ip", c.RealIP()).
			Int("status", c.Response().Status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("Request handled")

		return err
	}
}
