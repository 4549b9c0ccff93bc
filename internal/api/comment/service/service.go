package commentService

import (
	comments "PenaGolang/internal/api/comment"
	commentRepository "PenaGolang/internal/api/comment/repository"
	"PenaGolang/internal/entity"
	"PenaGolang/internal/policy"
	"PenaGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ICommentsService interface {
	CreateComment(ctx context.Context, principal entity.UserLoginData, blogID string, req comments.CreateCommentRequest) (comments.CommentResponse, error)
	CreateReply(ctx context.Context, principal entity.UserLoginData, commentID string, req comments.CreateCommentRequest) (comments.CommentResponse, error)
	GetComments(ctx context.Context, blogID string) (comments.CommentListResponse, error)
	DeleteComment(ctx context.Context, principal entity.UserLoginData, id string) error
}

type commentsService struct {
	log         *logrus.Logger
	commentRepo commentRepository.Repository
	utils       utils.IUtils
	variant     policy.Variant
}

func New(
	log *logrus.Logger,
	commentRepo commentRepository.Repository,
	utils utils.IUtils,
	variant policy.Variant,
) ICommentsService {
	return &commentsService{
		log:         log,
		commentRepo: commentRepo,
		utils:       utils,
		variant:     variant,
	}
}
