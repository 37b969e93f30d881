package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/models"
	"github.com/mkravets/launchpad/internal/services"
	"gorm.io/gorm"
)

type applyInput struct {
	ProjectID   uint   `json:"project_id"`
	TeamID      uint   `json:"team_id"`
	CoverLetter string `json:"cover_letter"`
}

func (handler *Handler) ApplyToProject(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	var input applyInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.ProjectID == 0 || input.TeamID == 0 {
		return apiError(c, fiber.StatusBadRequest, "project_id and team_id required")
	}

	application, err := handler.applicationService.ApplyToProject(user.ID, input.ProjectID, input.TeamID, input.CoverLetter)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return apiError(c, fiber.StatusNotFound, "project not found")
		case errors.Is(err, services.ErrNotTeamMemberForApply):
			return apiDenied(c, fiber.StatusForbidden, "not a member of that team", dashboardRoute)
		}
		return apiError(c, fiber.StatusInternalServerError, "apply failed")
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

type applicationStatusInput struct {
	Status string `json:"status"`
}

// UpdateApplicationStatus is restricted to the owning startup (or a platform
// admin); the status itself is applied as requested.
func (handler *Handler) UpdateApplicationStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	applicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid application id")
	}

	application, err := handler.applicationService.GetApplication(applicationID)
	if errors.Is(err, services.ErrApplicationNotFound) {
		return apiError(c, fiber.StatusNotFound, "application not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load application failed")
	}

	project, err := handler.projectService.GetProject(application.ProjectID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load project failed")
	}
	if project.CreatedBy != user.ID && user.Role != models.RolePlatformAdmin {
		return apiDenied(c, fiber.StatusForbidden, "not the project owner", dashboardRoute)
	}

	var input applicationStatusInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := handler.applicationService.UpdateStatus(applicationID, input.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidApplicationStatus) {
			return apiError(c, fiber.StatusBadRequest, "invalid application status")
		}
		return apiError(c, fiber.StatusInternalServerError, "update application failed")
	}
	return c.JSON(updated)
}

func (handler *Handler) ListMyApplications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	applications, err := handler.applicationService.ListUserApplications(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load applications failed")
	}
	return c.JSON(applications)
}

// ListProjectApplications is for the project's owner reviewing inbound
// applications.
func (handler *Handler) ListProjectApplications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

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
	if project.CreatedBy != user.ID && user.Role != models.RolePlatformAdmin {
		return apiDenied(c, fiber.StatusForbidden, "not the project owner", dashboardRoute)
	}

	applications, err := handler.applicationService.ListProjectApplications(projectID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load applications failed")
	}
	return c.JSON(applications)
}
