package comments

import (
	"PenaGolang/pkg/response"
	"net/http"
)

var (
	ErrCommentNotFound  = response.NewError(http.StatusNotFound, "comment not found")
	ErrReplyDepth       = response.NewError(http.StatusUnprocessableEntity, "replies to replies are not allowed")
	ErrCreateComment    = response.NewError(http.StatusInternalServerError, "failed to create comment")
	ErrDeleteComment    = response.NewError(http.StatusInternalServerError, "failed to delete comment")
	ErrAnonymousComment = response.NewError(http.StatusUnauthorized, "authentication required to comment")
)
