package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/models"
	"github.com/mkravets/launchpad/internal/security"
)

const oauthStateLength = 32
const oauthStateAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OAuthRedirect starts the federated sign-in flow. Control leaves the
// application here; nothing is returned to the caller beyond the redirect.
func (handler *Handler) OAuthRedirect(c *fiber.Ctx) error {
	provider, ok := handler.oauthProviders[c.Params("provider")]
	if !ok {
		return apiError(c, fiber.StatusNotFound, "unknown provider")
	}

	state, err := security.RandomString(oauthStateLength, oauthStateAlphabet)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "start oauth failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(10 * time.Minute),
	})
	return c.Redirect(provider.Config.AuthCodeURL(state), fiber.StatusSeeOther)
}

type oauthUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (handler *Handler) OAuthCallback(c *fiber.Ctx) error {
	providerName := c.Params("provider")
	provider, ok := handler.oauthProviders[providerName]
	if !ok {
		return apiError(c, fiber.StatusNotFound, "unknown provider")
	}

	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookieName) {
		return apiError(c, fiber.StatusBadRequest, "oauth state mismatch")
	}

	code := c.Query("code")
	if code == "" {
		return apiError(c, fiber.StatusBadRequest, "missing oauth code")
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	token, err := provider.Config.Exchange(ctx, code)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "oauth exchange failed")
	}

	response, err := provider.Config.Client(ctx, token).Get(provider.UserInfoURL)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "fetch identity failed")
	}
	defer response.Body.Close()

	var info oauthUserInfo
	if err := json.NewDecoder(response.Body).Decode(&info); err != nil || info.Email == "" {
		return apiError(c, fiber.StatusBadGateway, "unusable identity response")
	}

	rolePreference := c.Cookies(rolePreferenceCookieName, models.RoleStudent)
	user, err := handler.authService.FindOrCreateFederated(providerName, info.Email, info.Name, rolePreference)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "federated sign-in failed")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "issue session failed")
	}
	return c.Redirect(dashboardRoute, fiber.StatusSeeOther)
}
