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

type CategoryDB struct {
	ID          sql.NullString `db:"id"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	Author      sql.NullString `db:"author"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category entity.BlogCategory) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          category.ID,
		"name":        category.Name,
		"description": category.Description,
		"author":      category.Author,
		"created_at":  category.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateCategory")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"constraint": pqErr.Constraint,
			}).Warn("Unique constraint violated when creating category")
			return blogs.ErrCategoryNameTaken
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating category")
		return err
	}

	return nil
}

func (r *categoryRepository) GetAllCategories(ctx context.Context) ([]entity.BlogCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var rows []CategoryDB
	if err := r.q.SelectContext(ctx, &rows, queryGetAllCategories); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	list := make([]entity.BlogCategory, 0, len(rows))
	for _, row := range rows {
		list = append(list, r.makeCategory(row))
	}

	return list, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (entity.BlogCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var category CategoryDB

	query, args, err := sqlx.Named(queryGetCategoryByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.BlogCategory{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetCategoryByID no rows found")
			return entity.BlogCategory{}, blogs.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.BlogCategory{}, err
	}

	return r.makeCategory(category), nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category entity.BlogCategory) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          category.ID,
		"name":        category.Name,
		"description": category.Description,
	}

	query, args, err := sqlx.Named(queryUpdateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return blogs.ErrCategoryNameTaken
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         category.ID,
		}).Warn("UpdateCategory no rows affected")
		return blogs.ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory removes the category and every blog link pointing at it.
// Blogs themselves are untouched.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	linkQuery, linkArgs, err := sqlx.Named(queryDeleteCategoryLinksByCategory, map[string]interface{}{"category_id": id})
	if err != nil {
		return err
	}
	linkQuery = r.q.Rebind(linkQuery)

	if _, err := r.q.ExecContext(ctx, linkQuery, linkArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory links execution err")
		return err
	}

	query, args, err := sqlx.Named(queryDeleteCategory, map[string]interface{}{"id": id})
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return blogs.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) CountExisting(ctx context.Context, ids []string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCountExistingCategories, map[string]interface{}{
		"ids": pq.StringArray(ids),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountExisting named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountExisting execution err")
		return 0, err
	}

	return total, nil
}

func (r *categoryRepository) makeCategory(category CategoryDB) entity.BlogCategory {
	return entity.BlogCategory{
		ID:          category.ID.String,
		Name:        category.Name.String,
		Description: category.Description.String,
		Author:      category.Author.String,
		CreatedAt:   category.CreatedAt,
	}
}
