package blogService

import (
	blogs "PenaGolang/internal/api/blog"
	"PenaGolang/internal/entity"
	"PenaGolang/internal/policy"
	contextPkg "PenaGolang/pkg/context"
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) CreateBlog(c context.Context, principal entity.UserLoginData, req blogs.CreateBlogRequest, image *multipart.FileHeader) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := policy.Authorize(principal, principal.ID, policy.OwnerOnly); err != nil {
		return blogs.BlogResponse{}, err
	}

	imageURL := ""
	if image != nil {
		if err := s.utils.ValidateImageFile(image); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Rejected blog image")
			return blogs.BlogResponse{}, mapImageValidationError(err)
		}

		location, err := s.s3Client.UploadFile(image)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload blog image")
			return blogs.BlogResponse{}, blogs.ErrFailedToUpload
		}
		imageURL = location
	}

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}
	defer func() {
		_ = repo.Rollback()
	}()

	if len(req.CategoryIDs) > 0 {
		existing, err := repo.Categories.CountExisting(c, req.CategoryIDs)
		if err != nil {
			return blogs.BlogResponse{}, err
		}
		if existing != len(req.CategoryIDs) {
			return blogs.BlogResponse{}, blogs.ErrCategoryNotFound
		}
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	now := time.Now()
	blog := entity.Blog{
		ID:             ULID,
		Title:          req.Title,
		Body:           req.Body,
		ImageURL:       imageURL,
		Author:         principal.ID,
		Views:          0,
		IsPublished:    false,
		Tags:           req.Tags,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := repo.Blogs.CreateBlog(c, blog); err != nil {
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	if len(req.CategoryIDs) > 0 {
		if err := repo.Blogs.SetCategories(c, blog.ID, req.CategoryIDs); err != nil {
			return blogs.BlogResponse{}, blogs.ErrCreateBlog
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit blog creation")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blog.ID,
	}).Info("Blog created as draft")

	blog.CategoryIDs = req.CategoryIDs
	return makeBlogResponse(blog), nil
}

// GetBlog serves the public read path. Published blogs come back with the
// view counter already bumped by the same statement that read the row.
// Drafts either 404 or, when the install exposes them, come back without
// touching the counter.
func (s *blogsService) GetBlog(c context.Context, id string) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	blog, err := repo.Blogs.GetPublishedAndIncrementViews(c, id)
	if err != nil {
		if !errors.Is(err, blogs.ErrBlogNotFound) {
			return blogs.BlogResponse{}, err
		}

		if s.variant.DraftsHidden {
			return blogs.BlogResponse{}, blogs.ErrBlogNotFound
		}

		blog, err = repo.Blogs.GetBlogByID(c, id)
		if err != nil {
			return blogs.BlogResponse{}, err
		}
	}

	if err := s.hydrateBlog(c, repo, &blog); err != nil {
		return blogs.BlogResponse{}, err
	}

	return makeBlogResponse(blog), nil
}

func (s *blogsService) GetPublishedBlogs(c context.Context, page, limit int) (blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	page, limit = normalizePage(page, limit)

	cacheKey := publishedCacheKey(page, limit)
	var cached blogs.BlogListResponse
	if s.readCachedList(c, cacheKey, &cached) {
		return cached, nil
	}

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogListResponse{}, err
	}

	list, total, err := repo.Blogs.GetPublishedBlogs(c, limit, (page-1)*limit)
	if err != nil {
		return blogs.BlogListResponse{}, err
	}

	res, err := s.makeListResponse(c, repo, list, total)
	if err != nil {
		return blogs.BlogListResponse{}, err
	}

	s.writeCachedList(c, cacheKey, res)
	return res, nil
}

func (s *blogsService) GetMyBlogs(c context.Context, principal entity.UserLoginData, page, limit int) (blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := policy.Authorize(principal, principal.ID, policy.OwnerOnly); err != nil {
		return blogs.BlogListResponse{}, err
	}

	page, limit = normalizePage(page, limit)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogListResponse{}, err
	}

	list, total, err := repo.Blogs.GetBlogsByAuthor(c, principal.ID, limit, (page-1)*limit)
	if err != nil {
		return blogs.BlogListResponse{}, err
	}

	return s.makeListResponse(c, repo, list, total)
}

func (s *blogsService) SearchBlogs(c context.Context, req blogs.SearchBlogsRequest) (blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	page, limit := normalizePage(req.Page, req.Limit)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogListResponse{}, err
	}

	list, total, err := repo.Blogs.SearchPublishedBlogs(c, req.Query, req.Tag, req.CategoryID, limit, (page-1)*limit)
	if err != nil {
		return blogs.BlogListResponse{}, err
	}

	return s.makeListResponse(c, repo, list, total)
}

func (s *blogsService) GetRelatedBlogs(c context.Context, id string, limit int) (blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	if limit < 1 || limit > 20 {
		limit = 5
	}

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogListResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(c, id)
	if err != nil {
		return blogs.BlogListResponse{}, err
	}
	if !blog.IsPublished {
		return blogs.BlogListResponse{}, blogs.ErrBlogNotFound
	}

	list, err := repo.Blogs.GetRelatedBlogs(c, blog, limit)
	if err != nil {
		return blogs.BlogListResponse{}, err
	}

	return s.makeListResponse(c, repo, list, len(list))
}

func (s *blogsService) UpdateBlog(c context.Context, principal entity.UserLoginData, id string, req blogs.UpdateBlogRequest, image *multipart.FileHeader) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}
	defer func() {
		_ = repo.Rollback()
	}()

	blog, err := repo.Blogs.GetBlogByID(c, id)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	if err := policy.Authorize(principal, blog.Author, policy.OwnerOnly); err != nil {
		return blogs.BlogResponse{}, err
	}

	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Body != "" {
		blog.Body = req.Body
	}
	if req.Tags != nil {
		blog.Tags = req.Tags
	}
	if req.SEOTitle != "" {
		blog.SEOTitle = req.SEOTitle
	}
	if req.SEODescription != "" {
		blog.SEODescription = req.SEODescription
	}

	oldImageURL := blog.ImageURL
	replacedImage := false

	if image != nil {
		if err := s.utils.ValidateImageFile(image); err != nil {
			return blogs.BlogResponse{}, mapImageValidationError(err)
		}

		location, err := s.s3Client.UploadFile(image)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload blog image")
			return blogs.BlogResponse{}, blogs.ErrFailedToUpload
		}
		blog.ImageURL = location
		replacedImage = oldImageURL != ""
	} else if req.ImageURL == "remove" {
		blog.ImageURL = ""
		replacedImage = oldImageURL != ""
	}

	if req.CategoryIDs != nil {
		if len(req.CategoryIDs) > 0 {
			existing, err := repo.Categories.CountExisting(c, req.CategoryIDs)
			if err != nil {
				return blogs.BlogResponse{}, err
			}
			if existing != len(req.CategoryIDs) {
				return blogs.BlogResponse{}, blogs.ErrCategoryNotFound
			}
		}
		if err := repo.Blogs.SetCategories(c, blog.ID, req.CategoryIDs); err != nil {
			return blogs.BlogResponse{}, blogs.ErrUpdateBlog
		}
	}

	if err := repo.Blogs.UpdateBlog(c, blog); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return blogs.BlogResponse{}, err
		}
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	if err := s.hydrateBlog(c, repo, &blog); err != nil {
		return blogs.BlogResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit blog update")
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	if replacedImage {
		if err := s.s3Client.DeleteFile(oldImageURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete replaced blog image")
		}
	}

	if blog.IsPublished {
		s.invalidatePublishedCache(c)
	}

	return makeBlogResponse(blog), nil
}

// PublishBlog flips a draft to published. The transition is one-way: there is
// no unpublish. Republishing is either a no-op or a conflict depending on the
// install policy.
func (s *blogsService) PublishBlog(c context.Context, principal entity.UserLoginData, id string) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(c, id)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	if err := policy.Authorize(principal, blog.Author, policy.OwnerOnly); err != nil {
		return blogs.BlogResponse{}, err
	}

	if blog.IsPublished {
		if s.variant.RepublishConflict {
			return blogs.BlogResponse{}, blogs.ErrAlreadyPublished
		}

		if err := s.hydrateBlog(c, repo, &blog); err != nil {
			return blogs.BlogResponse{}, err
		}
		return makeBlogResponse(blog), nil
	}

	published, err := repo.Blogs.PublishBlog(c, id)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
	}).Info("Blog published")

	s.invalidatePublishedCache(c)

	if err := s.hydrateBlog(c, repo, &published); err != nil {
		return blogs.BlogResponse{}, err
	}

	return makeBlogResponse(published), nil
}

// DeleteBlog removes the blog and everything hanging off it: likes, category
// links, comments and their replies, all inside one transaction.
func (s *blogsService) DeleteBlog(c context.Context, principal entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(c)

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

	blog, err := repo.Blogs.GetBlogByID(c, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(principal, blog.Author, policy.OwnerOnly); err != nil {
		return err
	}

	if err := repo.Likes.DeleteLikesByBlog(c, id); err != nil {
		return blogs.ErrDeleteBlog
	}
	if err := repo.Blogs.SetCategories(c, id, nil); err != nil {
		return blogs.ErrDeleteBlog
	}
	if err := repo.Blogs.DeleteCommentsByBlog(c, id); err != nil {
		return blogs.ErrDeleteBlog
	}
	if err := repo.Blogs.DeleteBlog(c, id); err != nil {
		return blogs.ErrDeleteBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit blog deletion")
		return blogs.ErrDeleteBlog
	}

	if blog.ImageURL != "" {
		if err := s.s3Client.DeleteFile(blog.ImageURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete blog image from storage")
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
	}).Info("Blog deleted")

	if blog.IsPublished {
		s.invalidatePublishedCache(c)
	}

	return nil
}

func (s *blogsService) LikeBlog(c context.Context, principal entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(c)

	if err := policy.Authorize(principal, principal.ID, policy.OwnerOnly); err != nil {
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

	blog, err := repo.Blogs.GetBlogByID(c, id)
	if err != nil {
		return err
	}
	if !blog.IsPublished {
		return blogs.ErrBlogNotFound
	}

	inserted, err := repo.Likes.AddLike(c, id, principal.ID)
	if err != nil {
		return err
	}
	if !inserted {
		return blogs.ErrAlreadyLiked
	}

	return nil
}

func (s *blogsService) UnlikeBlog(c context.Context, principal entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(c)

	if err := policy.Authorize(principal, principal.ID, policy.OwnerOnly); err != nil {
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

	if _, err := repo.Blogs.GetBlogByID(c, id); err != nil {
		return err
	}

	return repo.Likes.RemoveLike(c, id, principal.ID)
}
