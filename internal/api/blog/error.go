package blogs

import (
	"PenaGolang/pkg/response"
	"net/http"
)

var (
	ErrBlogNotFound      = response.NewError(http.StatusNotFound, "blog not found")
	ErrCategoryNotFound  = response.NewError(http.StatusNotFound, "blog category not found")
	ErrCategoryNameTaken = response.NewError(http.StatusConflict, "category name already exists")
	ErrAlreadyLiked      = response.NewError(http.StatusConflict, "blog already liked by user")
	ErrAlreadyPublished  = response.NewError(http.StatusConflict, "blog already published")
	ErrCreateBlog        = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrUpdateBlog        = response.NewError(http.StatusInternalServerError, "failed to update blog")
	ErrDeleteBlog        = response.NewError(http.StatusInternalServerError, "failed to delete blog")
	ErrInvalidFileType   = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge      = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToUpload    = response.NewError(http.StatusInternalServerError, "failed to upload file")
)
