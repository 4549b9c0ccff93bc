package commentService

import (
	blogs "PenaGolang/internal/api/blog"
	comments "PenaGolang/internal/api/comment"
	commentRepository "PenaGolang/internal/api/comment/repository"
	"PenaGolang/internal/entity"
	"PenaGolang/internal/policy"
	"PenaGolang/pkg/utils"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = entity.UserLoginData{ID: "user-1", Username: "writer"}
	stranger = entity.UserLoginData{ID: "user-2", Username: "reader"}
	admin    = entity.UserLoginData{ID: "user-3", Username: "root", IsAdmin: true}
	anon     = entity.UserLoginData{Anonymous: true}
)

type fakeStore struct {
	comments map[string]entity.Comment
	blogs    map[string]entity.Blog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		comments: make(map[string]entity.Comment),
		blogs:    make(map[string]entity.Blog),
	}
}

type fakeRepository struct {
	store *fakeStore
}

func (f *fakeRepository) NewClient(tx bool) (commentRepository.Client, error) {
	return commentRepository.Client{
		Comments: &fakeComments{store: f.store},
		Blogs:    &fakeBlogLookup{store: f.store},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeComments struct {
	store *fakeStore
}

func (f *fakeComments) CreateComment(_ context.Context, comment entity.Comment) error {
	f.store.comments[comment.ID] = comment
	return nil
}

func (f *fakeComments) GetCommentByID(_ context.Context, id string) (entity.Comment, error) {
	comment, ok := f.store.comments[id]
	if !ok {
		return entity.Comment{}, comments.ErrCommentNotFound
	}
	return comment, nil
}

func (f *fakeComments) GetCommentsByBlog(_ context.Context, blogID string) ([]entity.Comment, error) {
	var list []entity.Comment
	for _, comment := range f.store.comments {
		if comment.BlogID == blogID {
			list = append(list, comment)
		}
	}
	return list, nil
}

func (f *fakeComments) GetRepliesByBlog(_ context.Context, blogID string) ([]entity.Comment, error) {
	var list []entity.Comment
	for _, comment := range f.store.comments {
		if comment.ParentID == "" {
			continue
		}
		parent, ok := f.store.comments[comment.ParentID]
		if ok && parent.BlogID == blogID {
			list = append(list, comment)
		}
	}
	return list, nil
}

func (f *fakeComments) GetReplies(_ context.Context, parentID string) ([]entity.Comment, error) {
	var list []entity.Comment
	for _, comment := range f.store.comments {
		if comment.ParentID == parentID {
			list = append(list, comment)
		}
	}
	return list, nil
}

func (f *fakeComments) DeleteCommentWithReplies(_ context.Context, id string) error {
	for replyID, comment := range f.store.comments {
		if comment.ParentID == id {
			delete(f.store.comments, replyID)
		}
	}
	delete(f.store.comments, id)
	return nil
}

type fakeBlogLookup struct {
	store *fakeStore
}

func (f *fakeBlogLookup) GetBlogRef(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := f.store.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return blog, nil
}

func newTestService(store *fakeStore, variant policy.Variant) ICommentsService {
	return New(logrus.New(), &fakeRepository{store: store}, utils.New(), variant)
}

func seedBlog(store *fakeStore, id string, published bool) {
	store.blogs[id] = entity.Blog{ID: id, Author: owner.ID, IsPublished: published}
}

func seedComment(store *fakeStore, id, author, blogID, parentID string) {
	store.comments[id] = entity.Comment{ID: id, Body: "hello", Author: author, BlogID: blogID, ParentID: parentID}
}

func TestCreateComment_OnPublishedBlog(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, policy.DefaultVariant())
	seedBlog(store, "blog-1", true)

	res, err := svc.CreateComment(context.Background(), stranger, "blog-1", comments.CreateCommentRequest{Body: "nice post"})
	require.NoError(t, err)

	assert.Equal(t, "blog-1", res.BlogID)
	assert.Empty(t, res.ParentID)
	assert.Equal(t, stranger.ID, res.Author)

	stored := store.comments[res.ID]
	assert.Equal(t, "blog-1", stored.BlogID)
	assert.Empty(t, stored.ParentID)
}

func TestCreateComment_DraftBlogRejected(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, policy.DefaultVariant())
	seedBlog(store, "blog-1", false)

	_, err := svc.CreateComment(context.Background(), stranger, "blog-1", comments.CreateCommentRequest{Body: "early"})
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestCreateComment_AnonymousPolicy(t *testing.T) {
	store := newFakeStore()
	seedBlog(store, "blog-1", true)

	svc := newTestService(store, policy.DefaultVariant())
	_, err := svc.CreateComment(context.Background(), anon, "blog-1", comments.CreateCommentRequest{Body: "drive-by"})
	assert.ErrorIs(t, err, comments.ErrAnonymousComment)

	variant := policy.DefaultVariant()
	variant.AnonymousComments = true
	svc = newTestService(store, variant)

	res, err := svc.CreateComment(context.Background(), anon, "blog-1", comments.CreateCommentRequest{Body: "drive-by"})
	require.NoError(t, err)
	assert.Empty(t, res.Author)
}

func TestCreateReply_UnderTopLevel(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, policy.DefaultVariant())
	seedBlog(store, "blog-1", true)
	seedComment(store, "comment-1", stranger.ID, "blog-1", "")

	res, err := svc.CreateReply(context.Background(), owner, "comment-1", comments.CreateCommentRequest{Body: "thanks"})
	require.NoError(t, err)

	assert.Equal(t, "comment-1", res.ParentID)
	assert.Empty(t, res.BlogID)
}

func TestCreateReply_DepthCapped(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, policy.DefaultVariant())
	seedBlog(store, "blog-1", true)
	seedComment(store, "comment-1", stranger.ID, "blog-1", "")
	seedComment(store, "reply-1", owner.ID, "", "comment-1")

	_, err := svc.CreateReply(context.Background(), stranger, "reply-1", comments.CreateCommentRequest{Body: "too deep"})
	assert.ErrorIs(t, err, comments.ErrReplyDepth)
}

func TestCreateReply_RequiresAuth(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, policy.DefaultVariant())
	seedBlog(store, "blog-1", true)
	seedComment(store, "comment-1", stranger.ID, "blog-1", "")

	_, err := svc.CreateReply(context.Background(), anon, "comment-1", comments.CreateCommentRequest{Body: "psst"})
	assert.ErrorIs(t, err, comments.ErrAnonymousComment)
}

func TestGetComments_BuildsTwoLevelTree(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, policy.DefaultVariant())
	seedBlog(store, "blog-1", true)
	seedComment(store, "comment-1", stranger.ID, "blog-1", "")
	seedComment(store, "reply-1", owner.ID, "", "comment-1")
	seedComment(store, "reply-2", admin.ID, "", "comment-1")

	res, err := svc.GetComments(context.Background(), "blog-1")
	require.NoError(t, err)

	require.Len(t, res.Comments, 1)
	assert.Len(t, res.Comments[0].Replies, 2)
	assert.Equal(t, 3, res.Total)
}

func TestGetComments_UnknownBlog(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, policy.DefaultVariant())

	_, err := svc.GetComments(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestDeleteComment_ModerationPolicy(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, policy.DefaultVariant())
	seedBlog(store, "blog-1", true)
	seedComment(store, "comment-1", stranger.ID, "blog-1", "")

	// Default install: only admins moderate, even the comment's own author
	// cannot remove it.
	err := svc.DeleteComment(context.Background(), stranger, "comment-1")
	assert.ErrorIs(t, err, policy.ErrAdminRequired)

	require.NoError(t, svc.DeleteComment(context.Background(), admin, "comment-1"))
	assert.NotContains(t, store.comments, "comment-1")
}

func TestDeleteComment_OwnerPolicyVariant(t *testing.T) {
	store := newFakeStore()
	variant := policy.DefaultVariant()
	variant.CommentDelete = policy.OwnerOnly
	svc := newTestService(store, variant)
	seedBlog(store, "blog-1", true)
	seedComment(store, "comment-1", stranger.ID, "blog-1", "")

	err := svc.DeleteComment(context.Background(), owner, "comment-1")
	assert.ErrorIs(t, err, policy.ErrForbidden)

	require.NoError(t, svc.DeleteComment(context.Background(), stranger, "comment-1"))
	assert.NotContains(t, store.comments, "comment-1")
}

func TestDeleteComment_CascadesReplies(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, policy.DefaultVariant())
	seedBlog(store, "blog-1", true)
	seedComment(store, "comment-1", stranger.ID, "blog-1", "")
	seedComment(store, "reply-1", owner.ID, "", "comment-1")

	require.NoError(t, svc.DeleteComment(context.Background(), admin, "comment-1"))
	assert.NotContains(t, store.comments, "comment-1")
	assert.NotContains(t, store.comments, "reply-1")
}
