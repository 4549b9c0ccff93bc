package blogService

import (
	blogs "PenaGolang/internal/api/blog"
	blogRepository "PenaGolang/internal/api/blog/repository"
	"PenaGolang/internal/entity"
	contextPkg "PenaGolang/pkg/context"
	"PenaGolang/pkg/redis"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const (
	publishedCachePrefix = "blogs:published"
	categoriesCacheKey   = "blogs:categories"
	listCacheTTL         = 2 * time.Minute
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func makeBlogResponse(blog entity.Blog) blogs.BlogResponse {
	tags := blog.Tags
	if tags == nil {
		tags = []string{}
	}
	categoryIDs := blog.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []string{}
	}

	return blogs.BlogResponse{
		ID:             blog.ID,
		Title:          blog.Title,
		Body:           blog.Body,
		ImageURL:       blog.ImageURL,
		Author:         blog.Author,
		Views:          blog.Views,
		IsPublished:    blog.IsPublished,
		Tags:           tags,
		CategoryIDs:    categoryIDs,
		LikeCount:      blog.LikeCount,
		SEOTitle:       blog.SEOTitle,
		SEODescription: blog.SEODescription,
		CreatedAt:      blog.CreatedAt,
		UpdatedAt:      blog.UpdatedAt,
	}
}

func makeCategoryResponse(category entity.BlogCategory) blogs.CategoryResponse {
	return blogs.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Author:      category.Author,
		CreatedAt:   category.CreatedAt,
	}
}

// hydrateBlog attaches the relation-backed fields (category links, like
// count) that the blogs table itself does not carry.
func (s *blogsService) hydrateBlog(c context.Context, repo blogRepository.Client, blog *entity.Blog) error {
	categoryIDs, err := repo.Blogs.GetCategoryIDs(c, blog.ID)
	if err != nil {
		return err
	}
	blog.CategoryIDs = categoryIDs

	likeCount, err := repo.Likes.CountLikes(c, blog.ID)
	if err != nil {
		return err
	}
	blog.LikeCount = likeCount

	return nil
}

func (s *blogsService) makeListResponse(c context.Context, repo blogRepository.Client, list []entity.Blog, total int) (blogs.BlogListResponse, error) {
	items := make([]blogs.BlogResponse, 0, len(list))
	for i := range list {
		if err := s.hydrateBlog(c, repo, &list[i]); err != nil {
			return blogs.BlogListResponse{}, err
		}
		items = append(items, makeBlogResponse(list[i]))
	}

	return blogs.BlogListResponse{Blogs: items, Total: total}, nil
}

func publishedCacheKey(page, limit int) string {
	return fmt.Sprintf("%s:%d:%d", publishedCachePrefix, page, limit)
}

func (s *blogsService) readCachedList(c context.Context, key string, dest interface{}) bool {
	payload, err := s.cache.GetJSON(c, key)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(c),
				"key":        key,
				"error":      err.Error(),
			}).Warn("Cache read failed, falling back to database")
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"key":        key,
			"error":      err.Error(),
		}).Warn("Cache payload unmarshal failed")
		return false
	}

	return true
}

func (s *blogsService) writeCachedList(c context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.cache.SetJSON(c, key, payload, listCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"key":        key,
			"error":      err.Error(),
		}).Warn("Cache write failed")
	}
}

func (s *blogsService) invalidatePublishedCache(c context.Context) {
	if err := s.cache.Invalidate(c, publishedCachePrefix+":*"); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Warn("Failed to invalidate published blogs cache")
	}
}

func (s *blogsService) invalidateCategoriesCache(c context.Context) {
	if err := s.cache.Invalidate(c, categoriesCacheKey); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Warn("Failed to invalidate categories cache")
	}
}

func mapImageValidationError(err error) error {
	if strings.Contains(err.Error(), "size") {
		return blogs.ErrFileTooLarge
	}
	return blogs.ErrInvalidFileType
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
