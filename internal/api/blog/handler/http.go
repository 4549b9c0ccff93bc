package blogHandler

import (
	blogService "PenaGolang/internal/api/blog/service"
	"PenaGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	log         *logrus.Logger
	blogService blogService.IBlogsService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	bs blogService.IBlogsService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *BlogHandler {
	return &BlogHandler{
		log:         log,
		blogService: bs,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *BlogHandler) Start(srv fiber.Router) {
	blogsGroup := srv.Group("/blogs")
	blogsGroup.Get("/", h.HandleGetPublishedBlogs)
	blogsGroup.Get("/search", h.HandleSearchBlogs)
	blogsGroup.Get("/mine", h.middleware.NewTokenMiddleware, h.HandleGetMyBlogs)
	blogsGroup.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateBlog)
	blogsGroup.Get("/:id", h.HandleGetBlog)
	blogsGroup.Get("/:id/related", h.HandleGetRelatedBlogs)
	blogsGroup.Patch("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateBlog)
	blogsGroup.Post("/:id/publish", h.middleware.NewTokenMiddleware, h.HandlePublishBlog)
	blogsGroup.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteBlog)
	blogsGroup.Post("/:id/like", h.middleware.NewTokenMiddleware, h.HandleLikeBlog)
	blogsGroup.Delete("/:id/like", h.middleware.NewTokenMiddleware, h.HandleUnlikeBlog)

	categories := srv.Group("/categories")
	categories.Get("/", h.HandleGetCategories)
	categories.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateCategory)
	categories.Get("/:id", h.HandleGetCategory)
	categories.Patch("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateCategory)
	categories.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteCategory)
}
