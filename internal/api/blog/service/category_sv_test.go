package blogService

import (
	blogs "PenaGolang/internal/api/blog"
	"PenaGolang/internal/entity"
	"PenaGolang/internal/policy"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory_AdminOnly(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store, policy.DefaultVariant())

	_, err := svc.CreateCategory(context.Background(), owner, blogs.CreateCategoryRequest{Name: "Craft"})
	assert.ErrorIs(t, err, policy.ErrAdminRequired)

	res, err := svc.CreateCategory(context.Background(), admin, blogs.CreateCategoryRequest{Name: "Craft"})
	require.NoError(t, err)
	assert.Equal(t, "Craft", res.Name)
	assert.Contains(t, store.categories, res.ID)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store, policy.DefaultVariant())

	_, err := svc.CreateCategory(context.Background(), admin, blogs.CreateCategoryRequest{Name: "Craft"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), admin, blogs.CreateCategoryRequest{Name: "Craft"})
	assert.ErrorIs(t, err, blogs.ErrCategoryNameTaken)
}

func TestGetCategories_PublicAndCached(t *testing.T) {
	store := newFakeStore()
	svc, _, cache := newTestService(store, policy.DefaultVariant())
	store.categories["cat-1"] = entity.BlogCategory{ID: "cat-1", Name: "Craft"}

	res, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Categories, 1)
	assert.Contains(t, cache.data, "blogs:categories")
}

func TestUpdateCategory_AdminOnly(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store, policy.DefaultVariant())
	store.categories["cat-1"] = entity.BlogCategory{ID: "cat-1", Name: "Craft"}

	err := svc.UpdateCategory(context.Background(), owner, "cat-1", blogs.UpdateCategoryRequest{Name: "Prose"})
	assert.ErrorIs(t, err, policy.ErrAdminRequired)

	require.NoError(t, svc.UpdateCategory(context.Background(), admin, "cat-1", blogs.UpdateCategoryRequest{Name: "Prose"}))
	assert.Equal(t, "Prose", store.categories["cat-1"].Name)
}

func TestDeleteCategory_DetachesBlogs(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store, policy.DefaultVariant())
	store.categories["cat-1"] = entity.BlogCategory{ID: "cat-1", Name: "Craft"}
	seedBlog(store, "blog-1", owner.ID, true)
	store.links["blog-1"] = []string{"cat-1"}

	err := svc.DeleteCategory(context.Background(), owner, "cat-1")
	assert.ErrorIs(t, err, policy.ErrAdminRequired)

	require.NoError(t, svc.DeleteCategory(context.Background(), admin, "cat-1"))
	assert.NotContains(t, store.categories, "cat-1")
	assert.Empty(t, store.links["blog-1"])
	assert.Contains(t, store.blogs, "blog-1")
}

func TestDeleteCategory_NotFound(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store, policy.DefaultVariant())

	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), admin, "missing"), blogs.ErrCategoryNotFound)
}
