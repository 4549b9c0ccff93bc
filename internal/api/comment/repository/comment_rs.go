package commentRepository

import (
	blogs "PenaGolang/internal/api/blog"
	comments "PenaGolang/internal/api/comment"
	"PenaGolang/internal/entity"
	contextPkg "PenaGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommentDB struct {
	ID        sql.NullString `db:"id"`
	Body      sql.NullString `db:"body"`
	Author    sql.NullString `db:"author"`
	BlogID    sql.NullString `db:"blog_id"`
	ParentID  sql.NullString `db:"parent_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type BlogRefDB struct {
	ID          sql.NullString `db:"id"`
	Author      sql.NullString `db:"author"`
	IsPublished bool           `db:"is_published"`
}

// nullable turns the entity's empty-string container fields into SQL NULLs so
// the check constraint on (blog_id, parent_id) sees exactly one side set.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         comment.ID,
		"body":       comment.Body,
		"author":     nullable(comment.Author),
		"blog_id":    nullable(comment.BlogID),
		"parent_id":  nullable(comment.ParentID),
		"created_at": comment.CreatedAt,
		"updated_at": comment.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comment CommentDB

	query, args, err := sqlx.Named(queryGetCommentByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.Comment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetCommentByID no rows found")
			return entity.Comment{}, comments.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID execution err")
		return entity.Comment{}, err
	}

	return r.makeComment(comment), nil
}

func (r *commentRepository) GetCommentsByBlog(ctx context.Context, blogID string) ([]entity.Comment, error) {
	return r.getMany(ctx, queryGetCommentsByBlog, map[string]interface{}{"blog_id": blogID}, "GetCommentsByBlog")
}

func (r *commentRepository) GetRepliesByBlog(ctx context.Context, blogID string) ([]entity.Comment, error) {
	return r.getMany(ctx, queryGetRepliesByBlog, map[string]interface{}{"blog_id": blogID}, "GetRepliesByBlog")
}

func (r *commentRepository) GetReplies(ctx context.Context, parentID string) ([]entity.Comment, error) {
	return r.getMany(ctx, queryGetReplies, map[string]interface{}{"parent_id": parentID}, "GetReplies")
}

func (r *commentRepository) getMany(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) ([]entity.Comment, error) {
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

	var rows []CommentDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return nil, err
	}

	list := make([]entity.Comment, 0, len(rows))
	for _, row := range rows {
		list = append(list, r.makeComment(row))
	}

	return list, nil
}

func (r *commentRepository) DeleteCommentWithReplies(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	for _, namedQuery := range []string{queryDeleteReplies, queryDeleteComment} {
		query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"id": id})
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("DeleteCommentWithReplies named query preparation err")
			return err
		}

		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("DeleteCommentWithReplies execution err")
			return err
		}
	}

	return nil
}

func (r *commentRepository) makeComment(comment CommentDB) entity.Comment {
	return entity.Comment{
		ID:        comment.ID.String,
		Body:      comment.Body.String,
		Author:    comment.Author.String,
		BlogID:    comment.BlogID.String,
		ParentID:  comment.ParentID.String,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func (r *blogLookupRepository) GetBlogRef(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var ref BlogRefDB

	query, args, err := sqlx.Named(queryGetBlogRef, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogRef named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&ref); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetBlogRef no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogRef execution err")
		return entity.Blog{}, err
	}

	return entity.Blog{
		ID:          ref.ID.String,
		Author:      ref.Author.String,
		IsPublished: ref.IsPublished,
	}, nil
}
