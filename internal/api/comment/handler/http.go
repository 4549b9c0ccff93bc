package commentHandler

import (
	commentService "PenaGolang/internal/api/comment/service"
	"PenaGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentHandler struct {
	log            *logrus.Logger
	commentService commentService.ICommentsService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs commentService.ICommentsService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *CommentHandler {
	return &CommentHandler{
		log:            log,
		commentService: cs,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *CommentHandler) Start(srv fiber.Router) {
	blogsGroup := srv.Group("/blogs")
	blogsGroup.Get("/:id/comments", h.HandleGetComments)
	// Optional auth: whether an anonymous principal may post is decided in
	// the service, per install policy.
	blogsGroup.Post("/:id/comments", h.middleware.NewOptionalTokenMiddleware, h.HandleCreateComment)

	commentsGroup := srv.Group("/comments")
	commentsGroup.Post("/:id/replies", h.middleware.NewTokenMiddleware, h.HandleCreateReply)
	commentsGroup.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteComment)
}
