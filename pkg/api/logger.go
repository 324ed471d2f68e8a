package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger logs one line per request, at Warn for client errors and Error
// for server errors. Health checks log at Debug.
func NewLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		err := c.Next()

		msg := "HTTP Request"
		if err != nil {
			msg = err.Error()
		}

		code := c.Response().StatusCode()

		ipAddress := c.IP()
		if forwardedIPs := c.IPs(); len(forwardedIPs) > 0 {
			ipAddress = forwardedIPs[0]
		}

		log.WithLevel(requestLogLevel(c.Path(), code)).
			Int("status", code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("query", string(c.Request().URI().QueryString())).
			Str("ip", ipAddress).
			Dur("latency", time.Since(startTime)).
			Msg(msg)

		return err
	}
}

func requestLogLevel(path string, code int) zerolog.Level {
	switch {
	case code >= fiber.StatusInternalServerError:
		return zerolog.ErrorLevel
	case code >= fiber.StatusBadRequest:
		return zerolog.WarnLevel
	case path == "/health":
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
