package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/services"
)

func (handler *Handler) GetMyProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}
	profile, _ := currentProfile(c)

	return c.JSON(fiber.Map{
		"profile":        profile,
		"complete":       services.IsProfileComplete(user.Role, profile),
		"missing_fields": services.MissingProfileFields(user.Role, profile),
	})
}

func (handler *Handler) UpdateMyProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	var update services.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.profileService.UpdateProfile(user.ID, update)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "update profile failed")
	}

	return c.JSON(fiber.Map{
		"profile":  profile,
		"complete": services.IsProfileComplete(user.Role, &profile),
	})
}

// GetUserProfile returns another user's profile; a user without a profile row
// is a 404, not a failure.
func (handler *Handler) GetUserProfile(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	profile, err := handler.profileService.GetUserProfile(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load profile failed")
	}
	if profile == nil {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	return c.JSON(profile)
}
