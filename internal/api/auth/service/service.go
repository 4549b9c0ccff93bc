package authService

import (
	"PenaGolang/internal/api/auth"
	authRepository "PenaGolang/internal/api/auth/repository"
	"PenaGolang/internal/entity"
	"PenaGolang/pkg/bcrypt"
	"PenaGolang/pkg/google"
	"PenaGolang/pkg/utils"
	"context"
	"net/url"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	RegisterUser(ctx context.Context, req auth.CreateUserRequest) (auth.UserResponse, error)
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	LoginGoogleURL() (*url.URL, error)
	LoginGoogle(ctx context.Context, req auth.LoginUserGoogle) (auth.LoginUserResponse, error)
	GetUserByID(ctx context.Context, id string) (auth.UserResponse, error)
	UpdateUser(ctx context.Context, principal entity.UserLoginData, req auth.UpdateUserRequest) error
}

type authService struct {
	log            *logrus.Logger
	authRepo       authRepository.Repository
	googleProvider google.ItfGoogle
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	googleProvider google.ItfGoogle,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepo:       authRepo,
		googleProvider: googleProvider,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}
