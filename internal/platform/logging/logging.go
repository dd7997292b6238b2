package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger: JSON output at the given level.
func Setup(level string) {
	Configure(os.Stdout, level)
}

func Configure(out io.Writer, level string) {
	log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339})
	log.SetOutput(out)

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// Component returns an entry tagged with the component name.
func Component(name string) *log.Entry {
	return log.WithField("component", name)
}

// RequestLogger logs one line per request with status and latency.
func RequestLogger() fiber.Handler {
	logCtx := Component("http")

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

		entry := logCtx.WithFields(log.Fields{
			"method":      c.Method(),
			"path":        c.Path(),
			"status_code": status,
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.IP(),
		})

		switch {
		case err != nil:
			entry.WithError(err).Error("Request failed")
		case status >= 500:
			entry.Error("Request completed")
		case status >= 400:
			entry.Warn("Request completed")
		default:
			entry.Info("Request completed")
		}
		return err
	}
}
