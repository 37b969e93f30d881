package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/services"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Register(input.Email, input.Password, input.Name, input.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "password too weak")
		case errors.Is(err, services.ErrAuthCredentialsInvalid),
			errors.Is(err, services.ErrSignupNameInvalid),
			errors.Is(err, services.ErrSignupRoleInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid registration input")
		}
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	// Registration does not sign the user in; they proceed to the sign-in
	// flow for their role.
	handler.setRolePreferenceCookie(c, user.Role)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       user.ID,
		"email":    user.Email,
		"role":     user.Role,
		"redirect": signInRouteForRolePreference(user.Role),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
			return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	handler.loginLimiter.reset(limiterKey)
	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "issue session failed")
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"email":    user.Email,
		"role":     user.Role,
		"redirect": dashboardRoute,
	})
}

// Logout clears the session cookie; profile state falls away with it because
// nothing resolves a principal afterwards.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}
	profile, _ := currentProfile(c)

	return c.JSON(fiber.Map{
		"id":          user.ID,
		"email":       user.Email,
		"role":        user.Role,
		"profile":     profile,
		"permissions": services.PermissionsForRole(user.Role),
	})
}
