package blogRepository

import (
	contextPkg "PenaGolang/pkg/context"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// AddLike records a like with set semantics. The insert is a no-op when the
// (blog, user) pair already exists; the returned bool reports whether a new
// row landed.
func (r *likeRepository) AddLike(ctx context.Context, blogID, userID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"blog_id":    blogID,
		"user_id":    userID,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryAddLike, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddLike named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddLike execution err")
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// RemoveLike is idempotent: unliking a blog the user never liked is not an
// error.
func (r *likeRepository) RemoveLike(ctx context.Context, blogID, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"blog_id": blogID,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryRemoveLike, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("RemoveLike named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("RemoveLike execution err")
		return err
	}

	return nil
}

func (r *likeRepository) CountLikes(ctx context.Context, blogID string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCountLikes, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountLikes named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountLikes execution err")
		return 0, err
	}

	return total, nil
}

func (r *likeRepository) DeleteLikesByBlog(ctx context.Context, blogID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteLikesByBlog, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLikesByBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLikesByBlog execution err")
		return err
	}

	return nil
}
