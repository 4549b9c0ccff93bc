package commentRepository

import (
	"PenaGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Comments: &commentRepository{q: sqlExecutor, log: r.log},
		Blogs:    &blogLookupRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Comments interface {
		CreateComment(ctx context.Context, comment entity.Comment) error
		GetCommentByID(ctx context.Context, id string) (entity.Comment, error)
		GetCommentsByBlog(ctx context.Context, blogID string) ([]entity.Comment, error)
		GetRepliesByBlog(ctx context.Context, blogID string) ([]entity.Comment, error)
		GetReplies(ctx context.Context, parentID string) ([]entity.Comment, error)
		DeleteCommentWithReplies(ctx context.Context, id string) error
	}

	// Blogs is the slim lookup the comment flows need: existence, publish
	// state and ownership of the containing blog.
	Blogs interface {
		GetBlogRef(ctx context.Context, id string) (entity.Blog, error)
	}

	Commit   func() error
	Rollback func() error
}

type commentRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type blogLookupRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
