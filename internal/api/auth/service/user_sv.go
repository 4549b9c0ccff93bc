package authService

import (
	"PenaGolang/internal/api/auth"
	"PenaGolang/internal/entity"
	contextPkg "PenaGolang/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) RegisterUser(ctx context.Context, req auth.CreateUserRequest) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.UserResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.UserResponse{}, err
	}

	now := time.Now()

	user := entity.User{
		ID:        ULID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashedPassword,
		IsAuthor:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, auth.ErrUsernameAlreadyExists) || errors.Is(err, auth.ErrEmailAlreadyExists) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Registration conflict")
			return auth.UserResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.UserResponse{}, auth.ErrCreateUser
	}

	return makeUserResponse(user), nil
}

func (s *authService) GetUserByID(ctx context.Context, id string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("User not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to get user by ID")
		}
		return auth.UserResponse{}, err
	}

	return makeUserResponse(user), nil
}

// UpdateUser touches first/last name and password only. The hash is recomputed
// solely when a new plaintext was supplied; username and email are fixed.
func (s *authService) UpdateUser(ctx context.Context, principal entity.UserLoginData, req auth.UpdateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	existing, err := repo.Users.GetByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         principal.ID,
			}).Warn("User not found")
			return auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return err
	}

	var hashedPassword string
	if req.Password != "" {
		hashedPassword, err = s.bcryptUtils.HashPassword(req.Password)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to hash password")
			return err
		}
	}

	user := entity.User{
		ID:        existing.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashedPassword,
	}

	if err := repo.Users.UpdateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return err
	}

	return nil
}
