package middleware

import (
	jwtPkg "PenaGolang/pkg/jwt"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	m := New(logrus.New())
	app := fiber.New()

	app.Get("/protected", m.NewTokenMiddleware, func(ctx *fiber.Ctx) error {
		user, err := jwtPkg.GetUserLoginData(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(user)
	})

	app.Get("/optional", m.NewOptionalTokenMiddleware, func(ctx *fiber.Ctx) error {
		user, err := jwtPkg.GetUserLoginData(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(user)
	})

	return app
}

func signTestToken(t *testing.T, lifetime time.Duration) string {
	t.Helper()

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       "user-1",
		"username": "writer",
		"email":    "writer@example.com",
		"is_admin": false,
	}, lifetime)
	require.NoError(t, err)

	return token
}

func TestTokenMiddleware_AbsentHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "authorization header is missing")
}

func TestTokenMiddleware_MalformedToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "access token invalid")
}

func TestTokenMiddleware_ExpiredToken(t *testing.T) {
	app := newTestApp(t)
	token := signTestToken(t, -time.Minute)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "access token expired")
}

func TestTokenMiddleware_ValidToken(t *testing.T) {
	app := newTestApp(t)
	token := signTestToken(t, time.Hour)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var payload struct {
		ID        string `json:"id"`
		Username  string `json:"username"`
		Anonymous bool   `json:"anonymous"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	assert.Equal(t, "user-1", payload.ID)
	assert.Equal(t, "writer", payload.Username)
	assert.False(t, payload.Anonymous)
}

func TestTokenMiddleware_MissingClaims(t *testing.T) {
	app := newTestApp(t)

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id": "user-1",
	}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestOptionalTokenMiddleware_NoHeaderYieldsAnonymous(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/optional", nil)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var payload struct {
		ID        string `json:"id"`
		Anonymous bool   `json:"anonymous"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	assert.Empty(t, payload.ID)
	assert.True(t, payload.Anonymous)
}

func TestOptionalTokenMiddleware_BadTokenStillRejected(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/optional", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestOptionalTokenMiddleware_ValidTokenResolvesPrincipal(t *testing.T) {
	app := newTestApp(t)
	token := signTestToken(t, time.Hour)

	req := httptest.NewRequest("GET", "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var payload struct {
		ID        string `json:"id"`
		Anonymous bool   `json:"anonymous"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	assert.Equal(t, "user-1", payload.ID)
	assert.False(t, payload.Anonymous)
}
