package authService

import (
	"PenaGolang/internal/api/auth"
	"PenaGolang/internal/entity"
	contextPkg "PenaGolang/pkg/context"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *authService) Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	res, err := issueToken(user)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return res, nil
}

func (s *authService) LoginGoogleURL() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	URL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		fmt.Printf("Error parsing URL: %v", err)
		return nil, err
	}

	parameters := url.Values{}
	parameters.Add("client_id", os.Getenv("GOOGLE_CLIENT_ID"))
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", os.Getenv("GOOGLE_STATE"))
	URL.RawQuery = parameters.Encode()

	return URL, nil
}

// LoginGoogle loads the user behind a verified Google email, provisioning a
// fresh account on first login, and issues the same JWT as password login.
func (s *authService) LoginGoogle(c context.Context, req auth.LoginUserGoogle) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to get user by email")
			return auth.LoginUserResponse{}, err
		}

		user, err = s.provisionGoogleUser(c, req.Email)
		if err != nil {
			return auth.LoginUserResponse{}, err
		}
	}

	res, err := issueToken(user)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	return res, nil
}

func (s *authService) provisionGoogleUser(c context.Context, email string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.User{}, err
	}

	// Unusable local password; the account authenticates through Google only.
	hashedPassword, err := s.bcryptUtils.HashPassword(ULID)
	if err != nil {
		return entity.User{}, err
	}

	localPart := strings.SplitN(email, "@", 2)[0]
	now := time.Now()

	user := entity.User{
		ID:        ULID,
		Username:  fmt.Sprintf("%s-%s", localPart, strings.ToLower(ULID[len(ULID)-6:])),
		FirstName: localPart,
		Email:     email,
		Password:  hashedPassword,
		IsAuthor:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to provision Google user")
		return entity.User{}, err
	}

	return user, nil
}
