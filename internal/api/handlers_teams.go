package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/services"
)

type teamInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

func (handler *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := handler.teamService.ListTeams()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load teams failed")
	}
	return c.JSON(teams)
}

func (handler *Handler) ListMyTeams(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	teams, err := handler.teamService.ListUserTeams(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load teams failed")
	}
	return c.JSON(teams)
}

func (handler *Handler) GetTeam(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid team id")
	}

	team, err := handler.teamService.GetTeam(teamID)
	if errors.Is(err, services.ErrTeamNotFound) {
		return apiError(c, fiber.StatusNotFound, "team not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load team failed")
	}
	return c.JSON(team)
}

func (handler *Handler) CreateTeam(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	var input teamInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	team, err := handler.teamService.CreateTeam(user.ID, input.Name, input.Description, input.Skills)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTeamName) {
			return apiError(c, fiber.StatusBadRequest, "invalid team name")
		}
		return apiError(c, fiber.StatusInternalServerError, "create team failed")
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

func (handler *Handler) UpdateTeam(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid team id")
	}

	var input teamInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	team, err := handler.teamService.UpdateTeam(teamID, user.ID, input.Name, input.Description, input.Skills)
	if err != nil {
		return handler.teamErrorResponse(c, err, "update team failed")
	}
	return c.JSON(team)
}

func (handler *Handler) DeleteTeam(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid team id")
	}

	if err := handler.teamService.DeleteTeam(teamID, user.ID); err != nil {
		return handler.teamErrorResponse(c, err, "delete team failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) JoinTeam(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid team id")
	}

	member, err := handler.teamService.RequestToJoin(teamID, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyTeamMember) {
			return apiError(c, fiber.StatusConflict, "already a team member")
		}
		return handler.teamErrorResponse(c, err, "join team failed")
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (handler *Handler) ApproveTeamMember(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid team id")
	}
	memberUserID, err := parseIDParam(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if err := handler.teamService.ApproveMember(teamID, user.ID, memberUserID); err != nil {
		return handler.teamErrorResponse(c, err, "approve member failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) RemoveTeamMember(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid team id")
	}
	memberUserID, err := parseIDParam(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if err := handler.teamService.RemoveMember(teamID, user.ID, memberUserID); err != nil {
		return handler.teamErrorResponse(c, err, "remove member failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) teamErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		return apiError(c, fiber.StatusNotFound, "team not found")
	case errors.Is(err, services.ErrTeamMemberNotFound):
		return apiError(c, fiber.StatusNotFound, "team member not found")
	case errors.Is(err, services.ErrNotTeamLead):
		return apiDenied(c, fiber.StatusForbidden, "team lead required", dashboardRoute)
	case errors.Is(err, services.ErrInvalidTeamName):
		return apiError(c, fiber.StatusBadRequest, "invalid team name")
	}
	return apiError(c, fiber.StatusInternalServerError, fallback)
}
