package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/models"
)

func (handler *Handler) ListColleges(c *fiber.Ctx) error {
	colleges, err := handler.repositories.Colleges.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load colleges failed")
	}
	return c.JSON(colleges)
}

type collegeInput struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

func (handler *Handler) CreateCollege(c *fiber.Ctx) error {
	var input collegeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "college name required")
	}

	college := models.College{
		Name:   name,
		Domain: strings.ToLower(strings.TrimSpace(input.Domain)),
	}
	if err := handler.repositories.Colleges.Create(&college); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "create college failed")
	}
	return c.Status(fiber.StatusCreated).JSON(college)
}
