package blogService

import (
	blogs "PenaGolang/internal/api/blog"
	blogRepository "PenaGolang/internal/api/blog/repository"
	"PenaGolang/internal/entity"
	"PenaGolang/internal/policy"
	"PenaGolang/pkg/redis"
	"PenaGolang/pkg/s3"
	"PenaGolang/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, principal entity.UserLoginData, req blogs.CreateBlogRequest, image *multipart.FileHeader) (blogs.BlogResponse, error)
	GetBlog(ctx context.Context, id string) (blogs.BlogResponse, error)
	GetPublishedBlogs(ctx context.Context, page, limit int) (blogs.BlogListResponse, error)
	GetMyBlogs(ctx context.Context, principal entity.UserLoginData, page, limit int) (blogs.BlogListResponse, error)
	SearchBlogs(ctx context.Context, req blogs.SearchBlogsRequest) (blogs.BlogListResponse, error)
	GetRelatedBlogs(ctx context.Context, id string, limit int) (blogs.BlogListResponse, error)
	UpdateBlog(ctx context.Context, principal entity.UserLoginData, id string, req blogs.UpdateBlogRequest, image *multipart.FileHeader) (blogs.BlogResponse, error)
	PublishBlog(ctx context.Context, principal entity.UserLoginData, id string) (blogs.BlogResponse, error)
	DeleteBlog(ctx context.Context, principal entity.UserLoginData, id string) error
	LikeBlog(ctx context.Context, principal entity.UserLoginData, id string) error
	UnlikeBlog(ctx context.Context, principal entity.UserLoginData, id string) error

	CreateCategory(ctx context.Context, principal entity.UserLoginData, req blogs.CreateCategoryRequest) (blogs.CategoryResponse, error)
	GetCategories(ctx context.Context) (blogs.CategoryListResponse, error)
	GetCategory(ctx context.Context, id string) (blogs.CategoryResponse, error)
	UpdateCategory(ctx context.Context, principal entity.UserLoginData, id string, req blogs.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, principal entity.UserLoginData, id string) error
}

type blogsService struct {
	log      *logrus.Logger
	blogRepo blogRepository.Repository
	s3Client s3.ItfS3
	cache    redis.IRedis
	utils    utils.IUtils
	variant  policy.Variant
}

func New(
	log *logrus.Logger,
	blogRepo blogRepository.Repository,
	s3Client s3.ItfS3,
	cache redis.IRedis,
	utils utils.IUtils,
	variant policy.Variant,
) IBlogsService {
	return &blogsService{
		log:      log,
		blogRepo: blogRepo,
		s3Client: s3Client,
		cache:    cache,
		utils:    utils,
		variant:  variant,
	}
}
