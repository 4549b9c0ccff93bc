package authService

import (
	"PenaGolang/internal/api/auth"
	"PenaGolang/internal/entity"
	jwtPkg "PenaGolang/pkg/jwt"
	"time"
)

const accessTokenLifetime = time.Hour * 1

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	}
}

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsAuthor:  user.IsAuthor,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

func issueToken(user entity.User) (auth.LoginUserResponse, error) {
	token, expired, err := jwtPkg.Sign(MakeUserData(user), accessTokenLifetime)
	if err != nil {
		return auth.LoginUserResponse{}, err
	}

	return auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
		User:             makeUserResponse(user),
	}, nil
}
