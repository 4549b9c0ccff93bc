package authRepository

import (
	"PenaGolang/internal/api/auth"
	"PenaGolang/internal/entity"
	contextPkg "PenaGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID        sql.NullString `db:"id"`
	Username  sql.NullString `db:"username"`
	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	Email     sql.NullString `db:"email"`
	Password  sql.NullString `db:"password"`
	IsAuthor  bool           `db:"is_author"`
	IsAdmin   bool           `db:"is_admin"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *userRepository) CreateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"password":   user.Password,
		"is_author":  user.IsAuthor,
		"is_admin":   user.IsAdmin,
		"created_at": user.CreatedAt,
		"updated_at": user.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"constraint": pqErr.Constraint,
			}).Warn("Unique constraint violated when creating user")

			if strings.Contains(pqErr.Constraint, "username") {
				return auth.ErrUsernameAlreadyExists
			}
			return auth.ErrEmailAlreadyExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByID, map[string]interface{}{"id": id}, "GetByID")
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByEmail, map[string]interface{}{"email": email}, "GetByEmail")
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByUsername, map[string]interface{}{"username": username}, "GetByUsername")
}

func (r *userRepository) getOne(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user UserDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn(operation + " no rows found")
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"password":   user.Password,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         user.ID,
		}).Warn("UpdateUser no rows affected")
		return auth.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) makeUser(user UserDB) entity.User {
	return entity.User{
		ID:        user.ID.String,
		Username:  user.Username.String,
		FirstName: user.FirstName.String,
		LastName:  user.LastName.String,
		Email:     user.Email.String,
		Password:  user.Password.String,
		IsAuthor:  user.IsAuthor,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
