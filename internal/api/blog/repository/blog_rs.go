package blogRepository

import (
	blogs "PenaGolang/internal/api/blog"
	"PenaGolang/internal/entity"
	contextPkg "PenaGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID             sql.NullString `db:"id"`
	Title          sql.NullString `db:"title"`
	Body           sql.NullString `db:"body"`
	ImageURL       sql.NullString `db:"image_url"`
	Author         sql.NullString `db:"author"`
	Views          sql.NullInt64  `db:"views"`
	IsPublished    bool           `db:"is_published"`
	Tags           pq.StringArray `db:"tags"`
	SEOTitle       sql.NullString `db:"seo_title"`
	SEODescription sql.NullString `db:"seo_description"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r *blogRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":              blog.ID,
		"title":           blog.Title,
		"body":            blog.Body,
		"image_url":       blog.ImageURL,
		"author":          blog.Author,
		"views":           blog.Views,
		"is_published":    blog.IsPublished,
		"tags":            pq.StringArray(blog.Tags),
		"seo_title":       blog.SEOTitle,
		"seo_description": blog.SEODescription,
		"created_at":      blog.CreatedAt,
		"updated_at":      blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	return r.getOne(ctx, queryGetBlogByID, map[string]interface{}{"id": id}, "GetBlogByID")
}

// GetPublishedAndIncrementViews bumps the view counter and returns the blog
// in one statement. Drafts never match, so a draft read maps to not found and
// leaves the counter untouched.
func (r *blogRepository) GetPublishedAndIncrementViews(ctx context.Context, id string) (entity.Blog, error) {
	return r.getOne(ctx, queryGetPublishedAndIncrementViews, map[string]interface{}{"id": id}, "GetPublishedAndIncrementViews")
}

func (r *blogRepository) getOne(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn(operation + " no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogRepository) GetPublishedBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, int, error) {
	list, err := r.getMany(ctx, queryGetPublishedBlogs, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}, "GetPublishedBlogs")
	if err != nil {
		return nil, 0, err
	}

	total, err := r.count(ctx, queryCountPublishedBlogs, map[string]interface{}{}, "CountPublishedBlogs")
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *blogRepository) GetBlogsByAuthor(ctx context.Context, author string, limit, offset int) ([]entity.Blog, int, error) {
	argsKV := map[string]interface{}{
		"author": author,
		"limit":  limit,
		"offset": offset,
	}

	list, err := r.getMany(ctx, queryGetBlogsByAuthor, argsKV, "GetBlogsByAuthor")
	if err != nil {
		return nil, 0, err
	}

	total, err := r.count(ctx, queryCountBlogsByAuthor, map[string]interface{}{"author": author}, "CountBlogsByAuthor")
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *blogRepository) SearchPublishedBlogs(ctx context.Context, q, tag, categoryID string, limit, offset int) ([]entity.Blog, int, error) {
	argsKV := map[string]interface{}{
		"q":           q,
		"tag":         tag,
		"category_id": categoryID,
		"limit":       limit,
		"offset":      offset,
	}

	list, err := r.getMany(ctx, querySearchPublishedBlogs, argsKV, "SearchPublishedBlogs")
	if err != nil {
		return nil, 0, err
	}

	countArgs := map[string]interface{}{
		"q":           q,
		"tag":         tag,
		"category_id": categoryID,
	}
	total, err := r.count(ctx, queryCountSearchPublishedBlogs, countArgs, "CountSearchPublishedBlogs")
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *blogRepository) GetRelatedBlogs(ctx context.Context, blog entity.Blog, limit int) ([]entity.Blog, error) {
	return r.getMany(ctx, queryGetRelatedBlogs, map[string]interface{}{
		"id":    blog.ID,
		"tags":  pq.StringArray(blog.Tags),
		"limit": limit,
	}, "GetRelatedBlogs")
}

func (r *blogRepository) getMany(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var rows []BlogDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return nil, err
	}

	list := make([]entity.Blog, 0, len(rows))
	for _, row := range rows {
		list = append(list, r.makeBlog(row))
	}

	return list, nil
}

func (r *blogRepository) count(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return 0, err
	}

	return total, nil
}

func (r *blogRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":              blog.ID,
		"title":           blog.Title,
		"body":            blog.Body,
		"image_url":       blog.ImageURL,
		"tags":            pq.StringArray(blog.Tags),
		"seo_title":       blog.SEOTitle,
		"seo_description": blog.SEODescription,
		"updated_at":      time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blog.ID,
		}).Warn("UpdateBlog no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogRepository) PublishBlog(ctx context.Context, id string) (entity.Blog, error) {
	return r.getOne(ctx, queryPublishBlog, map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}, "PublishBlog")
}

func (r *blogRepository) DeleteBlog(ctx context.Context, id string) error {
	return r.exec(ctx, queryDeleteBlog, map[string]interface{}{"id": id}, "DeleteBlog")
}

// SetCategories replaces the blog's category links wholesale.
func (r *blogRepository) SetCategories(ctx context.Context, blogID string, categoryIDs []string) error {
	if err := r.exec(ctx, queryDeleteCategoryLinksByBlog, map[string]interface{}{"blog_id": blogID}, "ClearCategoryLinks"); err != nil {
		return err
	}

	for _, categoryID := range categoryIDs {
		argsKV := map[string]interface{}{
			"blog_id":     blogID,
			"category_id": categoryID,
		}
		if err := r.exec(ctx, queryInsertCategoryLink, argsKV, "InsertCategoryLink"); err != nil {
			return err
		}
	}

	return nil
}

func (r *blogRepository) GetCategoryIDs(ctx context.Context, blogID string) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryGetCategoryIDsByBlog, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryIDs named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var ids []string
	if err := r.q.SelectContext(ctx, &ids, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryIDs execution err")
		return nil, err
	}

	return ids, nil
}

func (r *blogRepository) DeleteCommentsByBlog(ctx context.Context, blogID string) error {
	return r.exec(ctx, queryDeleteCommentsByBlog, map[string]interface{}{"blog_id": blogID}, "DeleteCommentsByBlog")
}

func (r *blogRepository) exec(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return err
	}

	return nil
}

func (r *blogRepository) makeBlog(blog BlogDB) entity.Blog {
	return entity.Blog{
		ID:             blog.ID.String,
		Title:          blog.Title.String,
		Body:           blog.Body.String,
		ImageURL:       blog.ImageURL.String,
		Author:         blog.Author.String,
		Views:          blog.Views.Int64,
		IsPublished:    blog.IsPublished,
		Tags:           []string(blog.Tags),
		SEOTitle:       blog.SEOTitle.String,
		SEODescription: blog.SEODescription.String,
		CreatedAt:      blog.CreatedAt,
		UpdatedAt:      blog.UpdatedAt,
	}
}
