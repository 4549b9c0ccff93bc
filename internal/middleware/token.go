package middleware

import (
	"PenaGolang/internal/entity"
	jwtPkg "PenaGolang/pkg/jwt"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

type tokenMiddleware struct {
}

func newTokenMiddleware() *tokenMiddleware {
	return &tokenMiddleware{}
}

// NewTokenMiddleware rejects any request without a valid bearer token. The
// three credential failure shapes get distinct messages so clients can tell
// an expired session from a bad or missing token.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	user, err := m.resolvePrincipal(ctx)
	if err != nil {
		return m.unauthorized(ctx, err)
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

// NewOptionalTokenMiddleware is the explicit anonymous-principal mode: a
// missing Authorization header yields an anonymous principal and defers the
// authorization decision to the service layer. A credential that is present
// but malformed or expired is still rejected.
func (m *middleware) NewOptionalTokenMiddleware(ctx *fiber.Ctx) error {
	user, err := m.resolvePrincipal(ctx)
	if err != nil {
		if errors.Is(err, jwtPkg.ErrTokenAbsent) {
			ctx.Locals("user", entity.UserLoginData{Anonymous: true})
			return ctx.Next()
		}
		return m.unauthorized(ctx, err)
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

func (m *middleware) resolvePrincipal(ctx *fiber.Ctx) (entity.UserLoginData, error) {
	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Token verification failed")
		return entity.UserLoginData{}, err
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return entity.UserLoginData{}, jwtPkg.ErrTokenMalformed
	}

	if claims["id"] == nil || claims["email"] == nil || claims["username"] == nil {
		m.log.WithFields(logrus.Fields{
			"error": "Token claims are missing required fields",
		}).Warn("Token claims check")
		return entity.UserLoginData{}, jwtPkg.ErrTokenMalformed
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return entity.UserLoginData{
		ID:       claims["id"].(string),
		Email:    claims["email"].(string),
		Username: claims["username"].(string),
		IsAdmin:  isAdmin,
	}, nil
}

func (m *middleware) unauthorized(ctx *fiber.Ctx, err error) error {
	message := "Unauthorized, access token invalid"
	switch {
	case errors.Is(err, jwtPkg.ErrTokenAbsent):
		message = "Unauthorized, authorization header is missing"
	case errors.Is(err, jwtPkg.ErrTokenExpired):
		message = "Unauthorized, access token expired"
	}

	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
