// Package httplogger implements the data sink for push transfers: a tiny
// HTTP server that remembers the body of the last request it received and
// serves it back on GET /data.
package httplogger

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"edcstudio/internal/logging"
)

// DefaultBody is served before any request has been recorded.
const DefaultBody = "No data received yet."

// Server holds the last received request body.
type Server struct {
	mu   sync.RWMutex
	last string
}

// NewServer constructs a Server with the default body.
func NewServer() *Server {
	return &Server{last: DefaultBody}
}

// Last returns the most recently recorded body.
func (s *Server) Last() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Record stores body as the latest payload.
func (s *Server) Record(body string) {
	s.mu.Lock()
	s.last = body
	s.mu.Unlock()
}

// App builds the Fiber app: GET /data serves the stored body as plain text,
// every other request records its body and returns 200.
func (s *Server) App() *fiber.App {
	log := logging.Get()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/data", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
		return c.SendString(s.Last())
	})

	app.All("/*", func(c *fiber.Ctx) error {
		s.Record(string(c.Body()))
		log.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"bytes":  len(c.Body()),
		}).Info("request recorded")
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}
