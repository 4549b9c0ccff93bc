package blogService

import (
	blogs "PenaGolang/internal/api/blog"
	"PenaGolang/internal/entity"
	"PenaGolang/internal/policy"
	contextPkg "PenaGolang/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) CreateCategory(c context.Context, principal entity.UserLoginData, req blogs.CreateCategoryRequest) (blogs.CategoryResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := policy.Authorize(principal, "", policy.AdminOnly); err != nil {
		return blogs.CategoryResponse{}, err
	}

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.CategoryResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.CategoryResponse{}, err
	}

	category := entity.BlogCategory{
		ID:          ULID,
		Name:        req.Name,
		Description: req.Description,
		Author:      principal.ID,
		CreatedAt:   time.Now(),
	}

	if err := repo.Categories.CreateCategory(c, category); err != nil {
		return blogs.CategoryResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"category_id": category.ID,
	}).Info("Category created")

	s.invalidateCategoriesCache(c)

	return makeCategoryResponse(category), nil
}

func (s *blogsService) GetCategories(c context.Context) (blogs.CategoryListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	var cached blogs.CategoryListResponse
	if s.readCachedList(c, categoriesCacheKey, &cached) {
		return cached, nil
	}

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.CategoryListResponse{}, err
	}

	list, err := repo.Categories.GetAllCategories(c)
	if err != nil {
		return blogs.CategoryListResponse{}, err
	}

	items := make([]blogs.CategoryResponse, 0, len(list))
	for _, category := range list {
		items = append(items, makeCategoryResponse(category))
	}

	res := blogs.CategoryListResponse{Categories: items}
	s.writeCachedList(c, categoriesCacheKey, res)

	return res, nil
}

func (s *blogsService) GetCategory(c context.Context, id string) (blogs.CategoryResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.CategoryResponse{}, err
	}

	category, err := repo.Categories.GetCategoryByID(c, id)
	if err != nil {
		return blogs.CategoryResponse{}, err
	}

	return makeCategoryResponse(category), nil
}

func (s *blogsService) UpdateCategory(c context.Context, principal entity.UserLoginData, id string, req blogs.UpdateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(c)

	if err := policy.Authorize(principal, "", policy.AdminOnly); err != nil {
		return err
	}

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	category := entity.BlogCategory{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := repo.Categories.UpdateCategory(c, category); err != nil {
		return err
	}

	s.invalidateCategoriesCache(c)
	return nil
}

// DeleteCategory drops the category and its blog links. Blogs keep existing
// without the label.
func (s *blogsService) DeleteCategory(c context.Context, principal entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(c)

	if err := policy.Authorize(principal, "", policy.AdminOnly); err != nil {
		return err
	}

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer func() {
		_ = repo.Rollback()
	}()

	if err := repo.Categories.DeleteCategory(c, id); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit category deletion")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"category_id": id,
	}).Info("Category deleted")

	s.invalidateCategoriesCache(c)
	return nil
}
