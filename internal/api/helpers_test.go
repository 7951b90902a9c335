package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/srimandev/taskmate/internal/db"
	"github.com/srimandev/taskmate/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	app, database, _ := newTestAppWithHandler(t, "")
	return app, database
}

func newTestAppWithHandler(t *testing.T, pushGatewayURL string) (*fiber.App, *gorm.DB, *Handler) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "taskmate-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", pushGatewayURL)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, handler
}

func createTestUser(t *testing.T, database *gorm.DB, username string, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:       username,
		Email:          email,
		PasswordHash:   string(passwordHash),
		FriendRequests: []uint{},
		CreatedAt:      time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginAndExtractToken(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	body := doJSONRequest(t, app, http.MethodPost, "/login", "", map[string]any{
		"email":    email,
		"password": password,
	}, http.StatusOK)

	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login response is missing the token")
	}
	return token
}

// doJSONRequest performs a request with an optional bearer token and JSON
// payload, asserts the status and decodes an object response body.
func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, token string, payload any, expectedStatus int) map[string]any {
	t.Helper()

	raw := performRequest(t, app, method, path, token, payload, expectedStatus)
	if len(raw) == 0 {
		return map[string]any{}
	}

	body := map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("%s %s decode body %q: %v", method, path, string(raw), err)
	}
	return body
}

// doJSONListRequest is doJSONRequest for endpoints responding with arrays.
func doJSONListRequest(t *testing.T, app *fiber.App, method string, path string, token string, expectedStatus int) []map[string]any {
	t.Helper()

	raw := performRequest(t, app, method, path, token, nil, expectedStatus)

	body := []map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("%s %s decode list body %q: %v", method, path, string(raw), err)
	}
	return body
}

func performRequest(t *testing.T, app *fiber.App, method string, path string, token string, payload any, expectedStatus int) []byte {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d (body %s)", method, path, expectedStatus, response.StatusCode, string(raw))
	}
	return raw
}
