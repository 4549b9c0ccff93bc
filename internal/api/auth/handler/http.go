package authHandler

import (
	authService "PenaGolang/internal/api/auth/service"
	"PenaGolang/internal/middleware"
	"PenaGolang/pkg/google"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.IAuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	as authService.IAuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle,
) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/login", h.HandleLogin)
	auth.Get("/login-gl", h.HandleGoogleLogin)
	auth.Get("/callback-gl", h.CallBackFromGoogle)

	users := srv.Group("/users")
	users.Post("/", h.HandleRegister)
	users.Get("/me", h.middleware.NewTokenMiddleware, h.HandleGetProfile)
	users.Patch("/me", h.middleware.NewTokenMiddleware, h.HandleUpdateProfile)
}
