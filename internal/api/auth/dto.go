package auth

import "time"

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=30"`
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=64"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserGoogle struct {
	Email string `json:"email"`
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Password  string `json:"password" validate:"omitempty,min=6,max=64"`
}

// UserResponse is the public-safe user summary; it never carries the hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAuthor  bool      `json:"is_author"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginUserResponse struct {
	AccessToken      string       `json:"access_token"`
	ExpiresInMinutes float64      `json:"expires_in_minutes"`
	User             UserResponse `json:"user"`
}
