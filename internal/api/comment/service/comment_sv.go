package commentService

import (
	blogs "PenaGolang/internal/api/blog"
	comments "PenaGolang/internal/api/comment"
	"PenaGolang/internal/entity"
	"PenaGolang/internal/policy"
	contextPkg "PenaGolang/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// CreateComment posts a top-level comment on a published blog. Unauthenticated
// authors are only accepted when the install allows anonymous commenting.
func (s *commentsService) CreateComment(c context.Context, principal entity.UserLoginData, blogID string, req comments.CreateCommentRequest) (comments.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if principal.Anonymous && !s.variant.AnonymousComments {
		return comments.CommentResponse{}, comments.ErrAnonymousComment
	}

	repo, err := s.commentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return comments.CommentResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogRef(c, blogID)
	if err != nil {
		return comments.CommentResponse{}, err
	}
	if !blog.IsPublished {
		return comments.CommentResponse{}, blogs.ErrBlogNotFound
	}

	comment, err := s.newComment(c, principal, req.Body)
	if err != nil {
		return comments.CommentResponse{}, err
	}
	comment.BlogID = blogID

	if err := repo.Comments.CreateComment(c, comment); err != nil {
		return comments.CommentResponse{}, comments.ErrCreateComment
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"comment_id": comment.ID,
		"blog_id":    blogID,
	}).Info("Comment created")

	return makeCommentResponse(comment), nil
}

// CreateReply posts a reply under an existing top-level comment. The thread
// is capped at two levels, so replying to a reply is rejected.
func (s *commentsService) CreateReply(c context.Context, principal entity.UserLoginData, commentID string, req comments.CreateCommentRequest) (comments.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if principal.Anonymous {
		return comments.CommentResponse{}, comments.ErrAnonymousComment
	}

	repo, err := s.commentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return comments.CommentResponse{}, err
	}

	parent, err := repo.Comments.GetCommentByID(c, commentID)
	if err != nil {
		return comments.CommentResponse{}, err
	}
	if parent.ParentID != "" {
		return comments.CommentResponse{}, comments.ErrReplyDepth
	}

	reply, err := s.newComment(c, principal, req.Body)
	if err != nil {
		return comments.CommentResponse{}, err
	}
	reply.ParentID = parent.ID

	if err := repo.Comments.CreateComment(c, reply); err != nil {
		return comments.CommentResponse{}, comments.ErrCreateComment
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"comment_id": reply.ID,
		"parent_id":  parent.ID,
	}).Info("Reply created")

	return makeCommentResponse(reply), nil
}

func (s *commentsService) GetComments(c context.Context, blogID string) (comments.CommentListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.commentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return comments.CommentListResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogRef(c, blogID)
	if err != nil {
		return comments.CommentListResponse{}, err
	}
	if !blog.IsPublished && s.variant.DraftsHidden {
		return comments.CommentListResponse{}, blogs.ErrBlogNotFound
	}

	topLevel, err := repo.Comments.GetCommentsByBlog(c, blogID)
	if err != nil {
		return comments.CommentListResponse{}, err
	}

	replies, err := repo.Comments.GetRepliesByBlog(c, blogID)
	if err != nil {
		return comments.CommentListResponse{}, err
	}

	repliesByParent := make(map[string][]comments.CommentResponse, len(topLevel))
	for _, reply := range replies {
		repliesByParent[reply.ParentID] = append(repliesByParent[reply.ParentID], makeCommentResponse(reply))
	}

	items := make([]comments.CommentResponse, 0, len(topLevel))
	for _, comment := range topLevel {
		res := makeCommentResponse(comment)
		res.Replies = repliesByParent[comment.ID]
		items = append(items, res)
	}

	return comments.CommentListResponse{
		Comments: items,
		Total:    len(topLevel) + len(replies),
	}, nil
}

// DeleteComment removes a comment and, for top-level comments, every reply
// under it, in one transaction. Who may delete is an install policy: comment
// owner or moderation by admins.
func (s *commentsService) DeleteComment(c context.Context, principal entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.commentRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer func() {
		_ = repo.Rollback()
	}()

	comment, err := repo.Comments.GetCommentByID(c, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(principal, comment.Author, s.variant.CommentDelete); err != nil {
		return err
	}

	if err := repo.Comments.DeleteCommentWithReplies(c, id); err != nil {
		return comments.ErrDeleteComment
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit comment deletion")
		return comments.ErrDeleteComment
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"comment_id": id,
	}).Info("Comment deleted")

	return nil
}

func (s *commentsService) newComment(c context.Context, principal entity.UserLoginData, body string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(c)

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Comment{}, comments.ErrCreateComment
	}

	author := principal.ID
	if principal.Anonymous {
		author = ""
	}

	now := time.Now()
	return entity.Comment{
		ID:        ULID,
		Body:      body,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func makeCommentResponse(comment entity.Comment) comments.CommentResponse {
	return comments.CommentResponse{
		ID:        comment.ID,
		Body:      comment.Body,
		Author:    comment.Author,
		BlogID:    comment.BlogID,
		ParentID:  comment.ParentID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
