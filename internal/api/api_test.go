package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/db"
	"github.com/mkravets/launchpad/internal/models"
)

const (
	testSecretKey = "0123456789abcdef0123456789abcdef"
	testPassword  = "Secret1A"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "launchpad_test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler := NewHandler(database, testSecretKey, false, nil)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func jsonRequest(t *testing.T, app *fiber.App, method, target string, payload any, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, out any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

// registerAndLogin walks the real registration and sign-in flow and returns
// the session cookie.
func registerAndLogin(t *testing.T, app *fiber.App, email, name, role string) *http.Cookie {
	t.Helper()
	response := jsonRequest(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    email,
		"password": testPassword,
		"name":     name,
		"role":     role,
	})
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register %s: unexpected status %d", email, response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    email,
		"password": testPassword,
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("login %s: unexpected status %d", email, response.StatusCode)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie
		}
	}
	t.Fatalf("login %s: no auth cookie set", email)
	return nil
}

// authCookieFor mints a session for a directly seeded account; admin roles
// cannot be reached through registration.
func authCookieFor(t *testing.T, handler *Handler, user *models.User) *http.Cookie {
	t.Helper()
	token, err := handler.buildToken(user, 0)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}
	return &http.Cookie{Name: authCookieName, Value: token}
}

func seedAdmin(t *testing.T, handler *Handler, email, role string) (*models.User, *http.Cookie) {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "!seeded", Role: role}
	profile := models.NewProfile(0, "Seeded Admin")
	if err := handler.repositories.Users.CreateWithProfile(&user, &profile); err != nil {
		t.Fatalf("seed %s user: %v", role, err)
	}
	return &user, authCookieFor(t, handler, &user)
}

func completeStudentProfile(t *testing.T, app *fiber.App, cookie *http.Cookie, college string) {
	t.Helper()
	response := jsonRequest(t, app, http.MethodPut, "/api/profile", fiber.Map{
		"college": college,
		"major":   "Computer Science",
	}, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("complete student profile: unexpected status %d", response.StatusCode)
	}
}

func completeStartupProfile(t *testing.T, app *fiber.App, cookie *http.Cookie, company string) {
	t.Helper()
	response := jsonRequest(t, app, http.MethodPut, "/api/profile", fiber.Map{
		"company_name": company,
		"industry":     "Software",
	}, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("complete startup profile: unexpected status %d", response.StatusCode)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func projectPayload(title string) fiber.Map {
	return fiber.Map{
		"title":           title,
		"description":     "Build the first release.",
		"category":        "web_development",
		"required_skills": []string{"Go", "React"},
		"deliverables":    []string{"Design doc", "Beta build"},
		"team_size":       3,
		"payment_model":   "unpaid",
	}
}
