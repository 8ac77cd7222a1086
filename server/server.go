// Package server exposes a read-only HTTP inspection surface over a World:
// health, full entity state, and ad-hoc CQL queries. It consumes only the
// world's public query API and never mutates the store.
package server

import (
	"github.com/gofiber/fiber/v2"

	"pkg.world.dev/archon"
)

const defaultPort = "4040"

type Server struct {
	world *archon.World
	app   *fiber.App

	port string
}

func New(world *archon.World, opts ...Option) *Server {
	s := &Server{
		world: world,
		app:   fiber.New(fiber.Config{DisableStartupMessage: true}),
		port:  defaultPort,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerHandlers()
	return s
}

func (s *Server) registerHandlers() {
	s.app.Get("/health", s.getHealth)
	s.app.Get("/debug/state", s.getDebugState)
	s.app.Post("/cql", s.postCQL)
}

// Serve blocks, serving HTTP until Shutdown is called.
func (s *Server) Serve() error {
	s.world.Logger().Info().Str("port", s.port).Msg("serving debug endpoints")
	return s.app.Listen(":" + s.port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying fiber app, used by tests to inject requests.
func (s *Server) App() *fiber.App {
	return s.app
}

type Option func(*Server)

// WithPort specifies the port the server listens on. The default is 4040.
func WithPort(port string) Option {
	return func(s *Server) {
		s.port = port
	}
}
