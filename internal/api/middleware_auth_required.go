package api

import (
	"github.com/gofiber/fiber/v2"
)

// AuthRequired is guard step one: resolve the principal before anything else
// looks at roles or permissions. The profile loads only after the principal
// resolves, and a principal without a profile row gets a minimal one created
// (repair for accounts predating transactional sign-up).
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		rolePreference := c.Cookies(rolePreferenceCookieName)
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRouteForRolePreference(rolePreference))
	}

	profile, err := handler.profileService.EnsureProfile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load profile failed")
	}

	c.Locals(contextUserKey, user)
	c.Locals(contextProfileKey, profile)
	return c.Next()
}
