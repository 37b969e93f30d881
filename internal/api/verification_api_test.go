package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/models"
)

func seedCollegeViaAPI(t *testing.T, app *fiber.App, handler *Handler, name string) models.College {
	t.Helper()
	_, admin := seedAdmin(t, handler, "root+"+name+"@launchpad.example", models.RolePlatformAdmin)
	response := jsonRequest(t, app, http.MethodPost, "/api/colleges", fiber.Map{"name": name}, admin)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create college: unexpected status %d", response.StatusCode)
	}
	var college models.College
	decodeBody(t, response, &college)
	return college
}

func TestVerificationFlow(t *testing.T) {
	app, handler := newTestApp(t)
	college := seedCollegeViaAPI(t, app, handler, "Hillside College")
	_, dean := seedAdmin(t, handler, "dean@hillside.edu", models.RoleCollegeAdmin)

	student := registerAndLogin(t, app, "dana@example.com", "Dana", models.RoleStudent)
	completeStudentProfile(t, app, student, "Hillside College")

	// A student cannot mint codes.
	response := jsonRequest(t, app, http.MethodPost, "/api/verification/codes",
		fiber.Map{"college_id": college.ID}, student)
	if response.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for student issuing codes, got %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodPost, "/api/verification/codes",
		fiber.Map{"college_id": college.ID}, dean)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("issue code: unexpected status %d", response.StatusCode)
	}
	var code models.VerificationCode
	decodeBody(t, response, &code)

	response = jsonRequest(t, app, http.MethodGet, "/api/verification/status", nil, student)
	var status struct {
		Verified bool `json:"verified"`
	}
	decodeBody(t, response, &status)
	if status.Verified {
		t.Fatal("expected unverified before redemption")
	}

	// A wrong code is a client error, distinct from server failure.
	response = jsonRequest(t, app, http.MethodPost, "/api/verification/verify",
		fiber.Map{"college_id": college.ID, "code": "LNCH-XXXX-XXXX"}, student)
	if response.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for a bad code, got %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodPost, "/api/verification/verify",
		fiber.Map{"college_id": college.ID, "code": code.Code}, student)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("verify: unexpected status %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodGet, "/api/verification/status", nil, student)
	decodeBody(t, response, &status)
	if !status.Verified {
		t.Fatal("expected verified after redemption")
	}

	response = jsonRequest(t, app, http.MethodGet, "/api/colleges/"+itoa(college.ID)+"/codes", nil, dean)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("list codes: unexpected status %d", response.StatusCode)
	}
	var codes []models.VerificationCode
	decodeBody(t, response, &codes)
	if len(codes) != 1 {
		t.Fatalf("expected 1 issued code, got %d", len(codes))
	}
}
