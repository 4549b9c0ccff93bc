package blogService

import (
	blogs "PenaGolang/internal/api/blog"
	blogRepository "PenaGolang/internal/api/blog/repository"
	"PenaGolang/internal/entity"
	"PenaGolang/pkg/redis"
	"context"
	"mime/multipart"
	"strings"
	"time"
)

// fakeStore is the shared in-memory backing for the fake repository client.
type fakeStore struct {
	blogs           map[string]entity.Blog
	likes           map[string]map[string]bool
	categories      map[string]entity.BlogCategory
	links           map[string][]string
	commentsDeleted []string
	listCalls       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		blogs:      make(map[string]entity.Blog),
		likes:      make(map[string]map[string]bool),
		categories: make(map[string]entity.BlogCategory),
		links:      make(map[string][]string),
	}
}

type fakeRepository struct {
	store *fakeStore
}

func (f *fakeRepository) NewClient(tx bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:      &fakeBlogs{store: f.store},
		Categories: &fakeCategories{store: f.store},
		Likes:      &fakeLikes{store: f.store},
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

type fakeBlogs struct {
	store *fakeStore
}

func (f *fakeBlogs) CreateBlog(_ context.Context, blog entity.Blog) error {
	f.store.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogs) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := f.store.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return blog, nil
}

func (f *fakeBlogs) GetPublishedAndIncrementViews(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := f.store.blogs[id]
	if !ok || !blog.IsPublished {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	blog.Views++
	f.store.blogs[id] = blog
	return blog, nil
}

func (f *fakeBlogs) GetPublishedBlogs(_ context.Context, limit, offset int) ([]entity.Blog, int, error) {
	f.store.listCalls++
	var list []entity.Blog
	for _, blog := range f.store.blogs {
		if blog.IsPublished {
			list = append(list, blog)
		}
	}
	return list, len(list), nil
}

func (f *fakeBlogs) GetBlogsByAuthor(_ context.Context, author string, limit, offset int) ([]entity.Blog, int, error) {
	var list []entity.Blog
	for _, blog := range f.store.blogs {
		if blog.Author == author {
			list = append(list, blog)
		}
	}
	return list, len(list), nil
}

func (f *fakeBlogs) SearchPublishedBlogs(_ context.Context, q, tag, categoryID string, limit, offset int) ([]entity.Blog, int, error) {
	var list []entity.Blog
	for _, blog := range f.store.blogs {
		if !blog.IsPublished {
			continue
		}
		if q != "" && !strings.Contains(blog.Title, q) && !strings.Contains(blog.Body, q) {
			continue
		}
		if tag != "" && !containsString(blog.Tags, tag) {
			continue
		}
		if categoryID != "" && !containsString(f.store.links[blog.ID], categoryID) {
			continue
		}
		list = append(list, blog)
	}
	return list, len(list), nil
}

func (f *fakeBlogs) GetRelatedBlogs(_ context.Context, source entity.Blog, limit int) ([]entity.Blog, error) {
	var list []entity.Blog
	for _, blog := range f.store.blogs {
		if !blog.IsPublished || blog.ID == source.ID {
			continue
		}
		if sharesAny(blog.Tags, source.Tags) || sharesAny(f.store.links[blog.ID], f.store.links[source.ID]) {
			list = append(list, blog)
		}
	}
	return list, nil
}

// UpdateBlog mirrors the real query: author, views and publish state stay as
// stored no matter what the caller passes.
func (f *fakeBlogs) UpdateBlog(_ context.Context, blog entity.Blog) error {
	stored, ok := f.store.blogs[blog.ID]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	stored.Title = blog.Title
	stored.Body = blog.Body
	stored.ImageURL = blog.ImageURL
	stored.Tags = blog.Tags
	stored.SEOTitle = blog.SEOTitle
	stored.SEODescription = blog.SEODescription
	stored.UpdatedAt = time.Now()
	f.store.blogs[blog.ID] = stored
	return nil
}

func (f *fakeBlogs) PublishBlog(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := f.store.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	blog.IsPublished = true
	f.store.blogs[id] = blog
	return blog, nil
}

func (f *fakeBlogs) DeleteBlog(_ context.Context, id string) error {
	delete(f.store.blogs, id)
	return nil
}

func (f *fakeBlogs) SetCategories(_ context.Context, blogID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		delete(f.store.links, blogID)
		return nil
	}
	f.store.links[blogID] = categoryIDs
	return nil
}

func (f *fakeBlogs) GetCategoryIDs(_ context.Context, blogID string) ([]string, error) {
	return f.store.links[blogID], nil
}

func (f *fakeBlogs) DeleteCommentsByBlog(_ context.Context, blogID string) error {
	f.store.commentsDeleted = append(f.store.commentsDeleted, blogID)
	return nil
}

type fakeCategories struct {
	store *fakeStore
}

func (f *fakeCategories) CreateCategory(_ context.Context, category entity.BlogCategory) error {
	for _, existing := range f.store.categories {
		if existing.Name == category.Name {
			return blogs.ErrCategoryNameTaken
		}
	}
	f.store.categories[category.ID] = category
	return nil
}

func (f *fakeCategories) GetAllCategories(_ context.Context) ([]entity.BlogCategory, error) {
	var list []entity.BlogCategory
	for _, category := range f.store.categories {
		list = append(list, category)
	}
	return list, nil
}

func (f *fakeCategories) GetCategoryByID(_ context.Context, id string) (entity.BlogCategory, error) {
	category, ok := f.store.categories[id]
	if !ok {
		return entity.BlogCategory{}, blogs.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategories) UpdateCategory(_ context.Context, category entity.BlogCategory) error {
	stored, ok := f.store.categories[category.ID]
	if !ok {
		return blogs.ErrCategoryNotFound
	}
	if category.Name != "" {
		stored.Name = category.Name
	}
	if category.Description != "" {
		stored.Description = category.Description
	}
	f.store.categories[category.ID] = stored
	return nil
}

func (f *fakeCategories) DeleteCategory(_ context.Context, id string) error {
	if _, ok := f.store.categories[id]; !ok {
		return blogs.ErrCategoryNotFound
	}
	delete(f.store.categories, id)
	for blogID, ids := range f.store.links {
		f.store.links[blogID] = removeString(ids, id)
	}
	return nil
}

func (f *fakeCategories) CountExisting(_ context.Context, ids []string) (int, error) {
	count := 0
	for _, id := range ids {
		if _, ok := f.store.categories[id]; ok {
			count++
		}
	}
	return count, nil
}

type fakeLikes struct {
	store *fakeStore
}

func (f *fakeLikes) AddLike(_ context.Context, blogID, userID string) (bool, error) {
	if f.store.likes[blogID] == nil {
		f.store.likes[blogID] = make(map[string]bool)
	}
	if f.store.likes[blogID][userID] {
		return false, nil
	}
	f.store.likes[blogID][userID] = true
	return true, nil
}

func (f *fakeLikes) RemoveLike(_ context.Context, blogID, userID string) error {
	delete(f.store.likes[blogID], userID)
	return nil
}

func (f *fakeLikes) CountLikes(_ context.Context, blogID string) (int, error) {
	return len(f.store.likes[blogID]), nil
}

func (f *fakeLikes) DeleteLikesByBlog(_ context.Context, blogID string) error {
	delete(f.store.likes, blogID)
	return nil
}

type fakeS3 struct {
	uploads int
	deleted []string
}

func (f *fakeS3) UploadFile(file *multipart.FileHeader) (string, error) {
	f.uploads++
	return "https://bucket.s3.amazonaws.com/" + file.Filename, nil
}

func (f *fakeS3) PresignUrl(fileName string) (string, error) {
	return fileName, nil
}

func (f *fakeS3) DeleteFile(fileName string) error {
	f.deleted = append(f.deleted, fileName)
	return nil
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) SetJSON(_ context.Context, key string, payload []byte, _ time.Duration) error {
	f.data[key] = payload
	return nil
}

func (f *fakeCache) GetJSON(_ context.Context, key string) ([]byte, error) {
	payload, ok := f.data[key]
	if !ok {
		return nil, redis.ErrCacheMiss
	}
	return payload, nil
}

func (f *fakeCache) Invalidate(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range f.data {
		if strings.HasPrefix(key, prefix) {
			delete(f.data, key)
		}
	}
	return nil
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func sharesAny(a, b []string) bool {
	for _, s := range a {
		if containsString(b, s) {
			return true
		}
	}
	return false
}

func removeString(list []string, target string) []string {
	out := list[:0]
	for _, s := range list {
		if s != target {
			out = append(out, s)
		}
	}
	return out
}
