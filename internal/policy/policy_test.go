package policy

import (
	"PenaGolang/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_OwnerOnly(t *testing.T) {
	owner := entity.UserLoginData{ID: "user-1", Username: "writer"}
	stranger := entity.UserLoginData{ID: "user-2", Username: "reader"}
	admin := entity.UserLoginData{ID: "user-3", Username: "root", IsAdmin: true}

	assert.NoError(t, Authorize(owner, "user-1", OwnerOnly))
	assert.ErrorIs(t, Authorize(stranger, "user-1", OwnerOnly), ErrForbidden)

	// Admin role grants nothing on owner-gated resources.
	assert.ErrorIs(t, Authorize(admin, "user-1", OwnerOnly), ErrForbidden)
}

func TestAuthorize_AdminOnly(t *testing.T) {
	admin := entity.UserLoginData{ID: "user-3", Username: "root", IsAdmin: true}
	regular := entity.UserLoginData{ID: "user-1", Username: "writer"}

	assert.NoError(t, Authorize(admin, "", AdminOnly))
	assert.ErrorIs(t, Authorize(regular, "", AdminOnly), ErrAdminRequired)

	// Owning the resource does not substitute for the admin role.
	assert.ErrorIs(t, Authorize(regular, "user-1", AdminOnly), ErrAdminRequired)
}

func TestAuthorize_Anonymous(t *testing.T) {
	anon := entity.UserLoginData{Anonymous: true}

	assert.ErrorIs(t, Authorize(anon, "user-1", OwnerOnly), ErrUnauthenticated)
	assert.ErrorIs(t, Authorize(anon, "", AdminOnly), ErrUnauthenticated)
	assert.ErrorIs(t, Authorize(entity.UserLoginData{}, "user-1", OwnerOnly), ErrUnauthenticated)
}

func TestDefaultVariant(t *testing.T) {
	v := DefaultVariant()

	assert.True(t, v.DraftsHidden)
	assert.Equal(t, AdminOnly, v.CommentDelete)
	assert.False(t, v.RepublishConflict)
	assert.False(t, v.AnonymousComments)
}

func TestVariantFromEnv(t *testing.T) {
	t.Setenv("BLOG_DRAFTS_HIDDEN", "false")
	t.Setenv("COMMENT_DELETE_POLICY", "owner")
	t.Setenv("REPUBLISH_CONFLICT", "true")
	t.Setenv("ANONYMOUS_COMMENTS", "true")

	v := VariantFromEnv()

	assert.False(t, v.DraftsHidden)
	assert.Equal(t, OwnerOnly, v.CommentDelete)
	assert.True(t, v.RepublishConflict)
	assert.True(t, v.AnonymousComments)
}

func TestVariantFromEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("BLOG_DRAFTS_HIDDEN", "maybe")
	t.Setenv("COMMENT_DELETE_POLICY", "nobody")

	v := VariantFromEnv()

	assert.True(t, v.DraftsHidden)
	assert.Equal(t, AdminOnly, v.CommentDelete)
}
