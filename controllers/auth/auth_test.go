package authController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"padho/config"
	"padho/database"
	"padho/middleware"
	"padho/models"
	"padho/services/session"
	authValidator "padho/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.Database = database.DbInstance{Db: db}
	return db
}

func newTestApp() *fiber.App {
	app := fiber.New()

	app.Post("/api/auth/register", authValidator.Register(), Register)
	app.Post("/api/auth/login", authValidator.Login(), Login)
	app.Get("/api/auth/me", middleware.RequireAuth, Me)
	app.Post("/api/auth/logout", middleware.RequireAuth, Logout)

	return app
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestRegisterLoginFlow(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	// Short passwords are accepted; there is no length rule
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "student@example.com",
		"password": "pw",
		"name":     "Student One",
	}), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "student@example.com",
		"password": "pw",
	}), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var data struct {
		SessionToken string `json:"session_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.SessionToken)

	// The session token also arrives as an HTTP-only cookie
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, data.SessionToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: data.SessionToken})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	payload := fiber.Map{"email": "dup@example.com", "password": "secret", "name": "First"}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", payload), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/register", payload), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Email already registered!", env.Message)
}

func TestRegisterDefaultsRoleToStudent(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "norole@example.com",
		"password": "secret",
		"name":     "No Role",
	}), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", "norole@example.com").First(&user).Error)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "wrongpw@example.com",
		"password": "right-password",
		"name":     "User",
	}), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "wrongpw@example.com",
		"password": "wrong-password",
	}), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "nobody@example.com",
		"password": "whatever",
	}), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginPasswordlessAccountRejected(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()

	// Accounts minted by the identity provider have no password hash
	user := models.User{
		ID:    uuid.NewString(),
		Email: "google-only@example.com",
		Name:  "Google User",
		Role:  models.RoleStudent,
	}
	require.NoError(t, db.Create(&user).Error)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "google-only@example.com",
		"password": "anything",
	}), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutRevokesSession(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()

	user := models.User{
		ID:    uuid.NewString(),
		Email: "logout@example.com",
		Name:  "Logout User",
		Role:  models.RoleStudent,
	}
	require.NoError(t, db.Create(&user).Error)

	s, err := session.Create(db, user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: s.SessionToken})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Nil(t, session.Resolve(db, s.SessionToken))
}

func TestRegisterValidation(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "not-an-email",
		"password": "secret",
		"name":     "User",
	}), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
