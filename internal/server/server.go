// Package server wires the HTTP surface of the API: routing, CORS,
// security headers, request logging, and the auth guard.
package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/solbing/solbing-api/internal/auth"
	"github.com/solbing/solbing-api/internal/config"
	"github.com/solbing/solbing-api/internal/store"
	"github.com/solbing/solbing-api/internal/users"
)

// Server owns the fiber app and the services the handlers call into.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	auth     *auth.Authenticator
	tokens   auth.TokenService
	users    store.Users
	profiles *users.Service
	logger   auth.Logger
}

// Option mutates a Server during construction.
type Option func(*Server)

// WithLogger overrides the default logger.
func WithLogger(l auth.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New assembles the fiber app, registers middleware and routes, and
// returns the server ready to listen.
func New(cfg *config.Config, authn *auth.Authenticator, tokens auth.TokenService, usersRepo store.Users, profiles *users.Service, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		auth:     authn,
		tokens:   tokens,
		users:    usersRepo,
		profiles: profiles,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.logger == nil {
		s.logger = auth.DefaultLogger()
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "solbing-api",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: s.errorHandler,
	})

	s.app.Use(recover.New())
	s.app.Use(helmet.New())
	s.app.Use(fiberlogger.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
	}))

	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", s.handleSignUp)
	authGroup.Post("/login", s.handleLogin)

	usersGroup := api.Group("/users", s.Protected())
	usersGroup.Get("/profile", s.handleGetProfile)
	usersGroup.Put("/profile", s.handleUpdateProfile)
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on the configured address.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Addr())
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
