package blogRepository

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
		Blogs:      &blogRepository{q: sqlExecutor, log: r.log},
		Categories: &categoryRepository{q: sqlExecutor, log: r.log},
		Likes:      &likeRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		GetPublishedAndIncrementViews(ctx context.Context, id string) (entity.Blog, error)
		GetPublishedBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, int, error)
		GetBlogsByAuthor(ctx context.Context, author string, limit, offset int) ([]entity.Blog, int, error)
		SearchPublishedBlogs(ctx context.Context, q, tag, categoryID string, limit, offset int) ([]entity.Blog, int, error)
		GetRelatedBlogs(ctx context.Context, blog entity.Blog, limit int) ([]entity.Blog, error)
		UpdateBlog(ctx context.Context, blog entity.Blog) error
		PublishBlog(ctx context.Context, id string) (entity.Blog, error)
		DeleteBlog(ctx context.Context, id string) error
		SetCategories(ctx context.Context, blogID string, categoryIDs []string) error
		GetCategoryIDs(ctx context.Context, blogID string) ([]string, error)
		DeleteCommentsByBlog(ctx context.Context, blogID string) error
	}

	Categories interface {
		CreateCategory(ctx context.Context, category entity.BlogCategory) error
		GetAllCategories(ctx context.Context) ([]entity.BlogCategory, error)
		GetCategoryByID(ctx context.Context, id string) (entity.BlogCategory, error)
		UpdateCategory(ctx context.Context, category entity.BlogCategory) error
		DeleteCategory(ctx context.Context, id string) error
		CountExisting(ctx context.Context, ids []string) (int, error)
	}

	Likes interface {
		AddLike(ctx context.Context, blogID, userID string) (bool, error)
		RemoveLike(ctx context.Context, blogID, userID string) error
		CountLikes(ctx context.Context, blogID string) (int, error)
		DeleteLikesByBlog(ctx context.Context, blogID string) error
	}

	Commit   func() error
	Rollback func() error
}

type blogRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type likeRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
