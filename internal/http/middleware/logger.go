package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"edcstudio/internal/logging"
)

// Logger logs each HTTP request as one structured line: request_id, method,
// path, status and latency in milliseconds.
func Logger() fiber.Handler {
	log := logging.Get()

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		log.WithFields(logrus.Fields{
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    float64(time.Since(start).Milliseconds()),
		}).Info("request completed")

		return err
	}
}
