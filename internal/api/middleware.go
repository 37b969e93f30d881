package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/models"
)

const (
	authCookieName           = "launchpad_auth"
	oauthStateCookieName     = "launchpad_oauth_state"
	rolePreferenceCookieName = "launchpad_role"

	contextUserKey    = "current_user"
	contextProfileKey = "current_profile"
)

// Client-side routes the guard points the caller at. The server never renders
// them; they travel as redirect hints in denial responses.
const (
	signInRoute          = "/signin"
	profileCompleteRoute = "/complete-profile"
	verificationRoute    = "/verify"
	dashboardRoute       = "/dashboard"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentProfile(c *fiber.Ctx) (*models.Profile, bool) {
	profile, ok := c.Locals(contextProfileKey).(*models.Profile)
	return profile, ok
}

func signInRouteForRolePreference(rolePreference string) string {
	switch rolePreference {
	case models.RoleStudent:
		return signInRoute + "/student"
	case models.RoleStartup:
		return signInRoute + "/startup"
	}
	return signInRoute
}
