package entity

import "time"

type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	IsAuthor  bool      `db:"is_author"`
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// UserLoginData is the principal attached to a request after token verification.
// Anonymous is true only on optional-auth routes when no credential was presented.
type UserLoginData struct {
	ID        string
	Username  string
	Email     string
	IsAdmin   bool
	Anonymous bool
}
