package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"riseacademy_backend/internals/configs"
	authModel "riseacademy_backend/internals/features/users/auth/model"
	userModel "riseacademy_backend/internals/features/users/user/model"
	authMw "riseacademy_backend/internals/middlewares/auth"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &authModel.TokenBlacklistModel{}))
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	configs.JWTSecret = "test-secret"
	configs.AccessTokenTTL = time.Hour

	app := fiber.New()
	app.Post("/api/auth/login", func(c *fiber.Ctx) error { return Login(db, c) })
	app.Post("/api/auth/logout", authMw.AuthMiddleware(db), func(c *fiber.Ctx) error { return Logout(db, c) })
	app.Get("/api/auth/me", authMw.AuthMiddleware(db), func(c *fiber.Ctx) error { return Me(db, c) })
	app.Get("/api/a/probe", authMw.AuthMiddleware(db), authMw.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, isAdmin bool) *userModel.UserModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &userModel.UserModel{
		UserEmail:    email,
		UserPassword: string(hash),
		UserFullName: "Test User",
		UserIsAdmin:  isAdmin,
		UserIsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func authedGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func extractToken(t *testing.T, resp *http.Response) string {
	t.Helper()
	data := decodeBody(t, resp)["data"].(map[string]any)
	token, _ := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	seedUser(t, db, "admin@riseacademy.edu", "s3cret-pass", true)

	resp := login(t, app, "Admin@RiseAcademy.edu", "s3cret-pass")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, true, user["is_admin"])
	assert.Equal(t, "admin@riseacademy.edu", user["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	seedUser(t, db, "admin@riseacademy.edu", "s3cret-pass", true)

	resp := login(t, app, "admin@riseacademy.edu", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp := login(t, app, "nobody@riseacademy.edu", "whatever123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginInactiveAccount(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	u := seedUser(t, db, "former@riseacademy.edu", "s3cret-pass", false)
	require.NoError(t, db.Model(u).Update("user_is_active", false).Error)

	resp := login(t, app, "former@riseacademy.edu", "s3cret-pass")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeReturnsIdentity(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	seedUser(t, db, "admin@riseacademy.edu", "s3cret-pass", true)

	token := extractToken(t, login(t, app, "admin@riseacademy.edu", "s3cret-pass"))

	resp := authedGet(t, app, "/api/auth/me", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "admin@riseacademy.edu", data["email"])
	assert.Equal(t, true, data["is_admin"])
}

func TestLogoutBlacklistsToken(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	seedUser(t, db, "admin@riseacademy.edu", "s3cret-pass", true)

	token := extractToken(t, login(t, app, "admin@riseacademy.edu", "s3cret-pass"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = authedGet(t, app, "/api/auth/me", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "revoked token must be rejected")
}

func TestAdminGateRejectsNonAdmin(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	seedUser(t, db, "parent@riseacademy.edu", "s3cret-pass", false)

	token := extractToken(t, login(t, app, "parent@riseacademy.edu", "s3cret-pass"))

	resp := authedGet(t, app, "/api/a/probe", token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminGateRejectsMissingToken(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	req := httptest.NewRequest(http.MethodGet, "/api/a/probe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGateRejectsGarbageToken(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp := authedGet(t, app, "/api/a/probe", "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
