package authService

import (
	"PenaGolang/internal/api/auth"
	authRepository "PenaGolang/internal/api/auth/repository"
	"PenaGolang/internal/entity"
	"PenaGolang/pkg/bcrypt"
	"PenaGolang/pkg/utils"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byID map[string]entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[string]entity.User)}
}

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	for _, existing := range f.byID {
		if existing.Username == user.Username {
			return auth.ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return auth.ErrEmailAlreadyExists
		}
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (entity.User, error) {
	for _, user := range f.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUsers) UpdateUser(_ context.Context, user entity.User) error {
	existing, ok := f.byID[user.ID]
	if !ok {
		return auth.ErrUserNotFound
	}
	if user.FirstName != "" {
		existing.FirstName = user.FirstName
	}
	if user.LastName != "" {
		existing.LastName = user.LastName
	}
	if user.Password != "" {
		existing.Password = user.Password
	}
	f.byID[user.ID] = existing
	return nil
}

type fakeRepository struct {
	users *fakeUsers
}

func (f *fakeRepository) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(users *fakeUsers) IAuthService {
	return New(logrus.New(), &fakeRepository{users: users}, nil, bcrypt.New(), utils.New())
}

func registerRequest() auth.CreateUserRequest {
	return auth.CreateUserRequest{
		Username:  "writer",
		FirstName: "Pena",
		LastName:  "Author",
		Email:     "writer@example.com",
		Password:  "hunter22",
	}
}

func TestRegisterUser(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users)

	res, err := svc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "writer", res.Username)
	assert.Equal(t, "writer@example.com", res.Email)
	assert.True(t, res.IsAuthor)
	assert.NotEmpty(t, res.ID)

	stored := users.byID[res.ID]
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.False(t, stored.IsAdmin)
}

func TestRegisterUser_UsernameConflict(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users)

	_, err := svc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "other@example.com"
	_, err = svc.RegisterUser(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrUsernameAlreadyExists)
}

func TestRegisterUser_EmailConflict(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users)

	_, err := svc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Username = "other"
	_, err = svc.RegisterUser(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	users := newFakeUsers()
	svc := newTestService(users)

	_, err := svc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "writer@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "writer", res.User.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	users := newFakeUsers()
	svc := newTestService(users)

	_, err := svc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "writer@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	users := newFakeUsers()
	svc := newTestService(users)

	// Unknown account and wrong password collapse into the same error.
	_, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestUpdateUser_PasswordRehashedOnlyWhenProvided(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users)

	res, err := svc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)
	originalHash := users.byID[res.ID].Password

	principal := entity.UserLoginData{ID: res.ID, Username: res.Username, Email: res.Email}

	require.NoError(t, svc.UpdateUser(context.Background(), principal, auth.UpdateUserRequest{
		FirstName: "Quill",
	}))
	assert.Equal(t, "Quill", users.byID[res.ID].FirstName)
	assert.Equal(t, originalHash, users.byID[res.ID].Password)

	require.NoError(t, svc.UpdateUser(context.Background(), principal, auth.UpdateUserRequest{
		Password: "newsecret",
	}))
	assert.NotEqual(t, originalHash, users.byID[res.ID].Password)
	assert.NotEqual(t, "newsecret", users.byID[res.ID].Password)
}
