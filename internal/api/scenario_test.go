package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/models"
)

// End-to-end walk of the core product loop: a startup posts a project, a
// verified student's team applies, and the startup accepts the application.
func TestProjectApplicationScenario(t *testing.T) {
	app, handler := newTestApp(t)
	college := seedCollegeViaAPI(t, app, handler, "Hillside College")
	_, dean := seedAdmin(t, handler, "dean@hillside.edu", models.RoleCollegeAdmin)

	founder := registerAndLogin(t, app, "founder@example.com", "Max", models.RoleStartup)
	completeStartupProfile(t, app, founder, "Acme")

	student := registerAndLogin(t, app, "dana@example.com", "Dana", models.RoleStudent)
	completeStudentProfile(t, app, student, "Hillside College")

	// The startup posts a project looking for a team of three.
	response := jsonRequest(t, app, http.MethodPost, "/api/projects", projectPayload("Mobile App MVP"), founder)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create project: unexpected status %d", response.StatusCode)
	}
	var project models.Project
	decodeBody(t, response, &project)

	// The student verifies their affiliation, then forms a team.
	response = jsonRequest(t, app, http.MethodPost, "/api/verification/codes",
		fiber.Map{"college_id": college.ID}, dean)
	var code models.VerificationCode
	decodeBody(t, response, &code)
	response = jsonRequest(t, app, http.MethodPost, "/api/verification/verify",
		fiber.Map{"college_id": college.ID, "code": code.Code}, student)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("verify: unexpected status %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodPost, "/api/teams",
		fiber.Map{"name": "Night Owls", "skills": []string{"Go", "React"}}, student)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create team: unexpected status %d", response.StatusCode)
	}
	var team models.Team
	decodeBody(t, response, &team)

	// The team applies to the project.
	response = jsonRequest(t, app, http.MethodPost, "/api/applications", fiber.Map{
		"project_id":   project.ID,
		"team_id":      team.ID,
		"cover_letter": "We would love to build this.",
	}, student)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("apply: unexpected status %d", response.StatusCode)
	}
	var application models.Application
	decodeBody(t, response, &application)
	if application.Status != models.ApplicationStatusPending {
		t.Fatalf("expected pending application, got %q", application.Status)
	}

	// Only the project owner sees and decides applications.
	response = jsonRequest(t, app, http.MethodGet,
		"/api/projects/"+itoa(project.ID)+"/applications", nil, student)
	if response.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for applicant listing applications, got %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodGet,
		"/api/projects/"+itoa(project.ID)+"/applications", nil, founder)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("list applications: unexpected status %d", response.StatusCode)
	}
	var applications []models.Application
	decodeBody(t, response, &applications)
	if len(applications) != 1 {
		t.Fatalf("expected 1 application, got %d", len(applications))
	}

	response = jsonRequest(t, app, http.MethodPatch,
		"/api/applications/"+itoa(application.ID)+"/status",
		fiber.Map{"status": models.ApplicationStatusAccepted}, founder)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("accept: unexpected status %d", response.StatusCode)
	}
	var accepted models.Application
	decodeBody(t, response, &accepted)
	if accepted.Status != models.ApplicationStatusAccepted {
		t.Fatalf("expected accepted, got %q", accepted.Status)
	}

	// Accepting an application does not move the project out of open; the
	// owner decides that separately.
	response = jsonRequest(t, app, http.MethodGet, "/api/projects/"+itoa(project.ID), nil, founder)
	var loaded models.Project
	decodeBody(t, response, &loaded)
	if loaded.Status != models.ProjectStatusOpen {
		t.Fatalf("expected project still open, got %q", loaded.Status)
	}

	// The student's application list reflects the decision.
	response = jsonRequest(t, app, http.MethodGet, "/api/applications/mine", nil, student)
	var mine []models.Application
	decodeBody(t, response, &mine)
	if len(mine) != 1 || mine[0].Status != models.ApplicationStatusAccepted {
		t.Fatalf("unexpected applications for student: %+v", mine)
	}

	// The two parties can message each other about it.
	response = jsonRequest(t, app, http.MethodPost, "/api/messages", fiber.Map{
		"recipient_id": application.SubmittedBy,
		"body":         "Welcome aboard!",
	}, founder)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("send message: unexpected status %d", response.StatusCode)
	}
}
