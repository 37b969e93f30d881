package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/services"
)

type milestoneInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

func (handler *Handler) ListProjectMilestones(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid project id")
	}

	milestones, err := handler.milestoneService.ListMilestones(projectID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load milestones failed")
	}
	return c.JSON(milestones)
}

func (handler *Handler) CreateProjectMilestone(c *fiber.Ctx) error {
	project, ok := handler.requireOwnedProject(c)
	if !ok {
		return nil
	}

	var input milestoneInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	milestone, err := handler.milestoneService.CreateMilestone(project.ID, input.Title, input.Description, input.DueDate)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMilestoneTitle) {
			return apiError(c, fiber.StatusBadRequest, "invalid milestone title")
		}
		return apiError(c, fiber.StatusInternalServerError, "create milestone failed")
	}
	return c.Status(fiber.StatusCreated).JSON(milestone)
}

type statusInput struct {
	Status string `json:"status"`
}

func (handler *Handler) UpdateMilestoneStatus(c *fiber.Ctx) error {
	if _, ok := handler.requireOwnedProject(c); !ok {
		return nil
	}

	milestoneID, err := parseIDParam(c, "milestoneId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid milestone id")
	}

	var input statusInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	milestone, err := handler.milestoneService.UpdateMilestoneStatus(milestoneID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMilestoneNotFound):
			return apiError(c, fiber.StatusNotFound, "milestone not found")
		case errors.Is(err, services.ErrInvalidMilestoneStatus):
			return apiError(c, fiber.StatusBadRequest, "invalid milestone status")
		}
		return apiError(c, fiber.StatusInternalServerError, "update milestone failed")
	}
	return c.JSON(milestone)
}

func (handler *Handler) DeleteMilestone(c *fiber.Ctx) error {
	if _, ok := handler.requireOwnedProject(c); !ok {
		return nil
	}

	milestoneID, err := parseIDParam(c, "milestoneId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid milestone id")
	}

	if err := handler.milestoneService.DeleteMilestone(milestoneID); err != nil {
		if errors.Is(err, services.ErrMilestoneNotFound) {
			return apiError(c, fiber.StatusNotFound, "milestone not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "delete milestone failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

type taskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MilestoneID *uint  `json:"milestone_id"`
	AssigneeID  *uint  `json:"assignee_id"`
}

func (handler *Handler) ListProjectTasks(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid project id")
	}

	tasks, err := handler.milestoneService.ListTasks(projectID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load tasks failed")
	}
	return c.JSON(tasks)
}

func (handler *Handler) CreateProjectTask(c *fiber.Ctx) error {
	project, ok := handler.requireOwnedProject(c)
	if !ok {
		return nil
	}

	var input taskInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	task, err := handler.milestoneService.CreateTask(project.ID, input.MilestoneID, input.Title, input.Description, input.AssigneeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTaskTitle):
			return apiError(c, fiber.StatusBadRequest, "invalid task title")
		case errors.Is(err, services.ErrMilestoneNotFound):
			return apiError(c, fiber.StatusNotFound, "milestone not found")
		case errors.Is(err, services.ErrMilestoneProjectMismatch):
			return apiError(c, fiber.StatusBadRequest, "milestone belongs to another project")
		}
		return apiError(c, fiber.StatusInternalServerError, "create task failed")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) UpdateTaskStatus(c *fiber.Ctx) error {
	if _, ok := handler.requireOwnedProject(c); !ok {
		return nil
	}

	taskID, err := parseIDParam(c, "taskId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	var input statusInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	task, err := handler.milestoneService.UpdateTaskStatus(taskID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return apiError(c, fiber.StatusNotFound, "task not found")
		case errors.Is(err, services.ErrInvalidTaskStatus):
			return apiError(c, fiber.StatusBadRequest, "invalid task status")
		}
		return apiError(c, fiber.StatusInternalServerError, "update task failed")
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	if _, ok := handler.requireOwnedProject(c); !ok {
		return nil
	}

	taskID, err := parseIDParam(c, "taskId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	if err := handler.milestoneService.DeleteTask(taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return apiError(c, fiber.StatusNotFound, "task not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "delete task failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
