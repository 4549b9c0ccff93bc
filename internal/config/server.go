package config

import (
	"PenaGolang/database/postgres"
	authHandler "PenaGolang/internal/api/auth/handler"
	authRepository "PenaGolang/internal/api/auth/repository"
	authService "PenaGolang/internal/api/auth/service"
	blogHandler "PenaGolang/internal/api/blog/handler"
	blogRepository "PenaGolang/internal/api/blog/repository"
	blogService "PenaGolang/internal/api/blog/service"
	commentHandler "PenaGolang/internal/api/comment/handler"
	commentRepository "PenaGolang/internal/api/comment/repository"
	commentService "PenaGolang/internal/api/comment/service"
	"PenaGolang/internal/middleware"
	"PenaGolang/internal/policy"
	"PenaGolang/pkg/bcrypt"
	"PenaGolang/pkg/google"
	"PenaGolang/pkg/redis"
	"PenaGolang/pkg/s3"
	"PenaGolang/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
	variant        policy.Variant
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{
		variant: policy.DefaultVariant(),
	}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

// WithPolicyVariant loads the install-policy switches from the environment.
func WithPolicyVariant() ServerOption {
	return func(s *Server) error {
		s.variant = policy.VariantFromEnv()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.New(s.log, blogRepo, s.s3Client, s.redisServer, s.utils, s.variant)
	blogHandlers := blogHandler.New(s.log, blogServices, s.validator, s.middleware)

	// Comment Domain
	commentRepo := commentRepository.New(s.db, s.log)
	commentServices := commentService.New(s.log, commentRepo, s.utils, s.variant)
	commentHandlers := commentHandler.New(s.log, commentServices, s.validator, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, blogHandlers, commentHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
