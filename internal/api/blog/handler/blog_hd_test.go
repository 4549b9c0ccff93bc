package blogHandler

import (
	blogs "PenaGolang/internal/api/blog"
	"PenaGolang/internal/entity"
	"PenaGolang/internal/middleware"
	jwtPkg "PenaGolang/pkg/jwt"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBlogService stubs the routes under test; unset hooks return zero values.
type fakeBlogService struct {
	getBlog  func(ctx context.Context, id string) (blogs.BlogResponse, error)
	likeBlog func(ctx context.Context, principal entity.UserLoginData, id string) error
}

func (f *fakeBlogService) CreateBlog(context.Context, entity.UserLoginData, blogs.CreateBlogRequest, *multipart.FileHeader) (blogs.BlogResponse, error) {
	return blogs.BlogResponse{}, nil
}

func (f *fakeBlogService) GetBlog(ctx context.Context, id string) (blogs.BlogResponse, error) {
	if f.getBlog != nil {
		return f.getBlog(ctx, id)
	}
	return blogs.BlogResponse{}, nil
}

func (f *fakeBlogService) GetPublishedBlogs(context.Context, int, int) (blogs.BlogListResponse, error) {
	return blogs.BlogListResponse{}, nil
}

func (f *fakeBlogService) GetMyBlogs(context.Context, entity.UserLoginData, int, int) (blogs.BlogListResponse, error) {
	return blogs.BlogListResponse{}, nil
}

func (f *fakeBlogService) SearchBlogs(context.Context, blogs.SearchBlogsRequest) (blogs.BlogListResponse, error) {
	return blogs.BlogListResponse{}, nil
}

func (f *fakeBlogService) GetRelatedBlogs(context.Context, string, int) (blogs.BlogListResponse, error) {
	return blogs.BlogListResponse{}, nil
}

func (f *fakeBlogService) UpdateBlog(context.Context, entity.UserLoginData, string, blogs.UpdateBlogRequest, *multipart.FileHeader) (blogs.BlogResponse, error) {
	return blogs.BlogResponse{}, nil
}

func (f *fakeBlogService) PublishBlog(context.Context, entity.UserLoginData, string) (blogs.BlogResponse, error) {
	return blogs.BlogResponse{}, nil
}

func (f *fakeBlogService) DeleteBlog(context.Context, entity.UserLoginData, string) error {
	return nil
}

func (f *fakeBlogService) LikeBlog(ctx context.Context, principal entity.UserLoginData, id string) error {
	if f.likeBlog != nil {
		return f.likeBlog(ctx, principal, id)
	}
	return nil
}

func (f *fakeBlogService) UnlikeBlog(context.Context, entity.UserLoginData, string) error {
	return nil
}

func (f *fakeBlogService) CreateCategory(context.Context, entity.UserLoginData, blogs.CreateCategoryRequest) (blogs.CategoryResponse, error) {
	return blogs.CategoryResponse{}, nil
}

func (f *fakeBlogService) GetCategories(context.Context) (blogs.CategoryListResponse, error) {
	return blogs.CategoryListResponse{}, nil
}

func (f *fakeBlogService) GetCategory(context.Context, string) (blogs.CategoryResponse, error) {
	return blogs.CategoryResponse{}, nil
}

func (f *fakeBlogService) UpdateCategory(context.Context, entity.UserLoginData, string, blogs.UpdateCategoryRequest) error {
	return nil
}

func (f *fakeBlogService) DeleteCategory(context.Context, entity.UserLoginData, string) error {
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, svc *fakeBlogService) *fiber.App {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	logger := logrus.New()
	m := middleware.New(logger)
	h := New(logger, svc, validator.New(), m)

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	h.Start(app.Group("/api/v1"))

	return app
}

func bearerToken(t *testing.T) string {
	t.Helper()

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       "user-1",
		"username": "writer",
		"email":    "writer@example.com",
		"is_admin": false,
	}, time.Hour)
	require.NoError(t, err)

	return "Bearer " + token
}

func TestHandleGetBlog(t *testing.T) {
	svc := &fakeBlogService{
		getBlog: func(_ context.Context, id string) (blogs.BlogResponse, error) {
			return blogs.BlogResponse{ID: id, Title: "On Writing", Views: 3, IsPublished: true}, nil
		},
	}
	app := newTestApp(t, svc)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/blogs/blog-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var body envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.True(t, body.Success)

	var blog blogs.BlogResponse
	require.NoError(t, json.Unmarshal(body.Data, &blog))
	assert.Equal(t, "blog-1", blog.ID)
	assert.Equal(t, int64(3), blog.Views)
}

func TestHandleGetBlog_NotFound(t *testing.T) {
	svc := &fakeBlogService{
		getBlog: func(context.Context, string) (blogs.BlogResponse, error) {
			return blogs.BlogResponse{}, blogs.ErrBlogNotFound
		},
	}
	app := newTestApp(t, svc)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/blogs/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	var body envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "blog not found", body.Message)
}

func TestHandleCreateBlog_RequiresToken(t *testing.T) {
	app := newTestApp(t, &fakeBlogService{})

	req := httptest.NewRequest("POST", "/api/v1/blogs/", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestHandleCreateBlog_ValidationFailure(t *testing.T) {
	app := newTestApp(t, &fakeBlogService{})

	req := httptest.NewRequest("POST", "/api/v1/blogs/", strings.NewReader(`{"title":"x","body":"short"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	var body envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "validation failed", body.Message)
}

func TestHandleLikeBlog_Conflict(t *testing.T) {
	svc := &fakeBlogService{
		likeBlog: func(context.Context, entity.UserLoginData, string) error {
			return blogs.ErrAlreadyLiked
		},
	}
	app := newTestApp(t, svc)

	req := httptest.NewRequest("POST", "/api/v1/blogs/blog-1/like", nil)
	req.Header.Set("Authorization", bearerToken(t))
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
}
