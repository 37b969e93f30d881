package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/models"
	"github.com/mkravets/launchpad/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := handler.projectService.ListProjects()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load projects failed")
	}
	return c.JSON(projects)
}

func (handler *Handler) ListMyProjects(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	projects, err := handler.projectService.ListUserProjects(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load projects failed")
	}
	return c.JSON(projects)
}

func (handler *Handler) GetProject(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid project id")
	}

	project, err := handler.projectService.GetProject(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "project not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load project failed")
	}
	return c.JSON(project)
}

func (handler *Handler) CreateProject(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	project, err := handler.projectService.CreateProject(user.ID, input)
	if err != nil {
		if isProjectValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "create project failed")
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (handler *Handler) UpdateProject(c *fiber.Ctx) error {
	project, ok := handler.requireOwnedProject(c)
	if !ok {
		return nil
	}

	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := handler.projectService.UpdateProject(project.ID, input)
	if err != nil {
		if isProjectValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "update project failed")
	}
	return c.JSON(updated)
}

type projectStatusInput struct {
	Status string `json:"status"`
}

func (handler *Handler) UpdateProjectStatus(c *fiber.Ctx) error {
	project, ok := handler.requireOwnedProject(c)
	if !ok {
		return nil
	}

	var input projectStatusInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := handler.projectService.UpdateProjectStatus(project.ID, input.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProjectStatus) {
			return apiError(c, fiber.StatusBadRequest, "invalid project status")
		}
		return apiError(c, fiber.StatusInternalServerError, "update project failed")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteProject(c *fiber.Ctx) error {
	project, ok := handler.requireOwnedProject(c)
	if !ok {
		return nil
	}

	if err := handler.projectService.DeleteProject(project.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "delete project failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// requireOwnedProject loads the project and checks the caller owns it. A
// platform admin passes the ownership check. On failure it writes the
// response itself and returns false; callers must stop without touching the
// project. The helpers it rejects with return the JSON-encode error, which is
// nil once the response is written, so their result cannot double as the
// failure signal here.
func (handler *Handler) requireOwnedProject(c *fiber.Ctx) (models.Project, bool) {
	user, ok := currentUser(c)
	if !ok {
		apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
		return models.Project{}, false
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		apiError(c, fiber.StatusBadRequest, "invalid project id")
		return models.Project{}, false
	}

	project, err := handler.projectService.GetProject(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		apiError(c, fiber.StatusNotFound, "project not found")
		return models.Project{}, false
	}
	if err != nil {
		apiError(c, fiber.StatusInternalServerError, "load project failed")
		return models.Project{}, false
	}

	if project.CreatedBy != user.ID && user.Role != models.RolePlatformAdmin {
		apiDenied(c, fiber.StatusForbidden, "not the project owner", dashboardRoute)
		return models.Project{}, false
	}
	return project, true
}

func isProjectValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidProjectTitle) ||
		errors.Is(err, services.ErrInvalidProjectCategory) ||
		errors.Is(err, services.ErrInvalidPaymentModel) ||
		errors.Is(err, services.ErrInvalidStipendAmount) ||
		errors.Is(err, services.ErrInvalidTeamSize) ||
		errors.Is(err, services.ErrInvalidProjectDates)
}
