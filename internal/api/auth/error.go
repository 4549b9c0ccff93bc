package auth

import (
	"PenaGolang/pkg/response"
	"net/http"
)

var (
	ErrUsernameAlreadyExists  = response.NewError(http.StatusConflict, "username already exists")
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusUnauthorized, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrCreateUser             = response.NewError(http.StatusInternalServerError, "failed to create user")
)
