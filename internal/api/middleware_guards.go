package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/services"
)

// ProfileCompleteRequired is guard step two: an authenticated user with an
// incomplete profile is pointed at the completion flow. Profile endpoints
// themselves stay reachable so the user can actually complete it.
func (handler *Handler) ProfileCompleteRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	profile, _ := currentProfile(c)
	if !services.IsProfileComplete(user.Role, profile) {
		return apiDenied(c, fiber.StatusForbidden, "profile incomplete", profileCompleteRoute)
	}
	return c.Next()
}

// VerifiedRequired is guard step three, used by routes that demand a proven
// college affiliation.
func (handler *Handler) VerifiedRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	verified, err := handler.verificationSvc.IsVerified(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load verification state failed")
	}
	if !verified {
		return apiDenied(c, fiber.StatusForbidden, "verification required", verificationRoute)
	}
	return c.Next()
}

// RequireRole is guard step four.
func (handler *Handler) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
		}
		if user.Role != role {
			return apiDenied(c, fiber.StatusForbidden, "role "+role+" required", dashboardRoute)
		}
		return c.Next()
	}
}

// RequirePermission is guard step five. A missing or unknown role denies; it
// never errors.
func (handler *Handler) RequirePermission(permission services.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
		}
		if !services.RoleHasPermission(user.Role, permission) {
			return apiDenied(c, fiber.StatusForbidden, "permission denied", dashboardRoute)
		}
		return c.Next()
	}
}
