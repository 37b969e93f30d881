package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// apiDenied is for expected authorization denials: the body carries the
// client route to move to, keeping denials distinct from failures.
func apiDenied(c *fiber.Ctx, status int, message string, redirect string) error {
	return c.Status(status).JSON(fiber.Map{"error": message, "redirect": redirect})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || value == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(value), nil
}
