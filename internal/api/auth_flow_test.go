package api

import (
	"net/http"
	"testing"
	"time"
)

func TestRegisterCreatesAccountWithoutSession(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	body := doJSONRequest(t, app, http.MethodPost, "/register", "", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "Sup3rSecret",
	}, http.StatusCreated)

	if _, hasToken := body["token"]; hasToken {
		t.Fatalf("registration must not issue a session token, got %v", body["token"])
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	payload := map[string]any{
		"username": "alice",
		"email":    "dup@example.com",
		"password": "Sup3rSecret",
	}
	doJSONRequest(t, app, http.MethodPost, "/register", "", payload, http.StatusCreated)

	payload["username"] = "someone-else"
	body := doJSONRequest(t, app, http.MethodPost, "/register", "", payload, http.StatusBadRequest)
	if body["error"] != "email already exists" {
		t.Fatalf("expected duplicate email error, got %v", body["error"])
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	doJSONRequest(t, app, http.MethodPost, "/register", "", map[string]any{
		"username": "",
		"email":    "alice@example.com",
		"password": "Sup3rSecret",
	}, http.StatusBadRequest)

	doJSONRequest(t, app, http.MethodPost, "/register", "", map[string]any{
		"username": "alice",
		"email":    "not-an-email",
		"password": "Sup3rSecret",
	}, http.StatusBadRequest)
}

func TestLoginReturnsTokenAndUserID(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "bob", "bob@example.com", "Sup3rSecret")

	body := doJSONRequest(t, app, http.MethodPost, "/login", "", map[string]any{
		"email":    "bob@example.com",
		"password": "Sup3rSecret",
	}, http.StatusOK)

	if body["token"] == "" || body["token"] == nil {
		t.Fatal("expected a session token")
	}
	if userID, _ := body["userId"].(float64); uint(userID) != user.ID {
		t.Fatalf("expected userId %d, got %v", user.ID, body["userId"])
	}
}

func TestLoginRejectsWrongPasswordWithoutToken(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "bob", "bob@example.com", "Sup3rSecret")

	body := doJSONRequest(t, app, http.MethodPost, "/login", "", map[string]any{
		"email":    "bob@example.com",
		"password": "wrong-password",
	}, http.StatusBadRequest)

	if _, hasToken := body["token"]; hasToken {
		t.Fatal("failed login must not issue a token")
	}
	if body["error"] != "invalid credentials" {
		t.Fatalf("expected invalid credentials error, got %v", body["error"])
	}
}

func TestLoginRejectsUnknownEmailWithSameError(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	body := doJSONRequest(t, app, http.MethodPost, "/login", "", map[string]any{
		"email":    "ghost@example.com",
		"password": "whatever123",
	}, http.StatusBadRequest)
	if body["error"] != "invalid credentials" {
		t.Fatalf("expected invalid credentials error, got %v", body["error"])
	}
}

func TestLoginThrottlesRepeatedFailures(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "bob", "bob@example.com", "Sup3rSecret")

	payload := map[string]any{
		"email":    "bob@example.com",
		"password": "wrong-password",
	}
	for attempt := 0; attempt < loginAttemptsLimit; attempt++ {
		doJSONRequest(t, app, http.MethodPost, "/login", "", payload, http.StatusBadRequest)
	}

	doJSONRequest(t, app, http.MethodPost, "/login", "", payload, http.StatusTooManyRequests)

	// The limiter blocks even a correct password once tripped.
	doJSONRequest(t, app, http.MethodPost, "/login", "", map[string]any{
		"email":    "bob@example.com",
		"password": "Sup3rSecret",
	}, http.StatusTooManyRequests)
}

func TestAuthRequiredRejectsMissingAndMalformedTokens(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	doJSONRequest(t, app, http.MethodGet, "/tasks", "", nil, http.StatusUnauthorized)
	doJSONRequest(t, app, http.MethodGet, "/tasks", "not-a-jwt", nil, http.StatusUnauthorized)
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestAppWithHandler(t, "")
	user := createTestUser(t, database, "bob", "bob@example.com", "Sup3rSecret")

	token, err := handler.buildAuthToken(user.ID, time.Now().Add(-2*handler.tokenTTL))
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	doJSONRequest(t, app, http.MethodGet, "/tasks", token, nil, http.StatusUnauthorized)
}

func TestAuthRequiredRejectsTokenSignedWithOtherSecret(t *testing.T) {
	t.Parallel()

	app, database, _ := newTestAppWithHandler(t, "")
	_, otherDatabase, otherHandler := newTestAppWithHandler(t, "")
	otherHandler.secretKey = []byte("a-different-secret")

	user := createTestUser(t, database, "bob", "bob@example.com", "Sup3rSecret")
	createTestUser(t, otherDatabase, "bob", "bob@example.com", "Sup3rSecret")

	forged, err := otherHandler.buildAuthToken(user.ID, time.Now())
	if err != nil {
		t.Fatalf("build forged token: %v", err)
	}

	doJSONRequest(t, app, http.MethodGet, "/tasks", forged, nil, http.StatusUnauthorized)
}

func TestValidTokenForDeletedUserYieldsNotFound(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "bob", "bob@example.com", "Sup3rSecret")
	token := loginAndExtractToken(t, app, "bob@example.com", "Sup3rSecret")

	if err := database.Delete(&user).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	doJSONRequest(t, app, http.MethodGet, "/tasks", token, nil, http.StatusNotFound)
}
