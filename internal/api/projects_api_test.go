package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/models"
)

func TestProjectRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerAndLogin(t, app, "founder@example.com", "Max", models.RoleStartup)
	completeStartupProfile(t, app, cookie, "Acme")

	response := jsonRequest(t, app, http.MethodPost, "/api/projects", projectPayload("Mobile App MVP"), cookie)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: unexpected status %d", response.StatusCode)
	}
	var created models.Project
	decodeBody(t, response, &created)
	if created.ID == 0 {
		t.Fatal("expected server-assigned id")
	}
	if created.Status != models.ProjectStatusOpen {
		t.Fatalf("expected open status, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected server-assigned created_at")
	}

	// The stored project must match what was submitted.
	response = jsonRequest(t, app, http.MethodGet, "/api/projects/"+itoa(created.ID), nil, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("get: unexpected status %d", response.StatusCode)
	}
	var loaded models.Project
	decodeBody(t, response, &loaded)
	if loaded.Title != "Mobile App MVP" || loaded.TeamSize != 3 || len(loaded.Deliverables) != 2 {
		t.Fatalf("project did not round-trip: %+v", loaded)
	}
}

func TestListMyProjectsIsStable(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerAndLogin(t, app, "founder@example.com", "Max", models.RoleStartup)
	completeStartupProfile(t, app, cookie, "Acme")

	for _, title := range []string{"First", "Second"} {
		response := jsonRequest(t, app, http.MethodPost, "/api/projects", projectPayload(title), cookie)
		if response.StatusCode != fiber.StatusCreated {
			t.Fatalf("create %s: unexpected status %d", title, response.StatusCode)
		}
	}

	// Listing is a pure read; repeating it must not change the result.
	for i := 0; i < 3; i++ {
		response := jsonRequest(t, app, http.MethodGet, "/api/projects/mine", nil, cookie)
		if response.StatusCode != fiber.StatusOK {
			t.Fatalf("list: unexpected status %d", response.StatusCode)
		}
		var mine []models.Project
		decodeBody(t, response, &mine)
		if len(mine) != 2 {
			t.Fatalf("expected 2 projects, got %d", len(mine))
		}
	}
}

func TestProjectOwnershipEnforced(t *testing.T) {
	app, _ := newTestApp(t)
	owner := registerAndLogin(t, app, "founder@example.com", "Max", models.RoleStartup)
	completeStartupProfile(t, app, owner, "Acme")
	rival := registerAndLogin(t, app, "rival@example.com", "Riva", models.RoleStartup)
	completeStartupProfile(t, app, rival, "Rival Inc")

	response := jsonRequest(t, app, http.MethodPost, "/api/projects", projectPayload("Mobile App MVP"), owner)
	var created models.Project
	decodeBody(t, response, &created)

	response = jsonRequest(t, app, http.MethodPatch, "/api/projects/"+itoa(created.ID)+"/status",
		fiber.Map{"status": models.ProjectStatusCancelled}, rival)
	if response.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", response.StatusCode)
	}

	// The refused update must not have touched the project.
	response = jsonRequest(t, app, http.MethodGet, "/api/projects/"+itoa(created.ID), nil, rival)
	var afterDenial models.Project
	decodeBody(t, response, &afterDenial)
	if afterDenial.Status != models.ProjectStatusOpen {
		t.Fatalf("denied status change leaked through, project is %q", afterDenial.Status)
	}

	// Nor may a refused milestone create leave a row behind.
	response = jsonRequest(t, app, http.MethodPost, "/api/projects/"+itoa(created.ID)+"/milestones",
		fiber.Map{"title": "Hijacked"}, rival)
	if response.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-owner milestone create, got %d", response.StatusCode)
	}
	response = jsonRequest(t, app, http.MethodGet, "/api/projects/"+itoa(created.ID)+"/milestones", nil, owner)
	var milestones []models.ProjectMilestone
	decodeBody(t, response, &milestones)
	if len(milestones) != 0 {
		t.Fatalf("expected no milestones after denied create, got %d", len(milestones))
	}

	response = jsonRequest(t, app, http.MethodPatch, "/api/projects/"+itoa(created.ID)+"/status",
		fiber.Map{"status": models.ProjectStatusCancelled}, owner)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected owner to update status, got %d", response.StatusCode)
	}
}

func TestProjectDeleteCascades(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerAndLogin(t, app, "founder@example.com", "Max", models.RoleStartup)
	completeStartupProfile(t, app, cookie, "Acme")

	response := jsonRequest(t, app, http.MethodPost, "/api/projects", projectPayload("Mobile App MVP"), cookie)
	var created models.Project
	decodeBody(t, response, &created)

	response = jsonRequest(t, app, http.MethodPost, "/api/projects/"+itoa(created.ID)+"/milestones",
		fiber.Map{"title": "Alpha release"}, cookie)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create milestone: unexpected status %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodDelete, "/api/projects/"+itoa(created.ID), nil, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("delete: unexpected status %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodGet, "/api/projects/"+itoa(created.ID), nil, cookie)
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", response.StatusCode)
	}
}

func TestMilestoneAndTaskFlow(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerAndLogin(t, app, "founder@example.com", "Max", models.RoleStartup)
	completeStartupProfile(t, app, cookie, "Acme")

	response := jsonRequest(t, app, http.MethodPost, "/api/projects", projectPayload("Mobile App MVP"), cookie)
	var project models.Project
	decodeBody(t, response, &project)

	response = jsonRequest(t, app, http.MethodPost, "/api/projects/"+itoa(project.ID)+"/milestones",
		fiber.Map{"title": "Alpha release"}, cookie)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create milestone: unexpected status %d", response.StatusCode)
	}
	var milestone models.ProjectMilestone
	decodeBody(t, response, &milestone)

	response = jsonRequest(t, app, http.MethodPost, "/api/projects/"+itoa(project.ID)+"/tasks",
		fiber.Map{"title": "Wire login", "milestone_id": milestone.ID}, cookie)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create task: unexpected status %d", response.StatusCode)
	}
	var task models.ProjectTask
	decodeBody(t, response, &task)
	if task.Status != models.TaskStatusTodo {
		t.Fatalf("expected todo, got %q", task.Status)
	}

	response = jsonRequest(t, app, http.MethodPatch,
		"/api/projects/"+itoa(project.ID)+"/tasks/"+itoa(task.ID)+"/status",
		fiber.Map{"status": models.TaskStatusDone}, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("update task status: unexpected status %d", response.StatusCode)
	}

	// Milestone statuses use their own vocabulary.
	response = jsonRequest(t, app, http.MethodPatch,
		"/api/projects/"+itoa(project.ID)+"/milestones/"+itoa(milestone.ID)+"/status",
		fiber.Map{"status": "done"}, cookie)
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for task vocabulary on a milestone, got %d", response.StatusCode)
	}
}
