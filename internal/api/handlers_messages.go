package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/services"
)

type sendMessageInput struct {
	RecipientID uint   `json:"recipient_id"`
	Body        string `json:"body"`
}

func (handler *Handler) SendMessage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	var input sendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	message, err := handler.messageService.Send(user.ID, input.RecipientID, input.Body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessageBody):
			return apiError(c, fiber.StatusBadRequest, "invalid message body")
		case errors.Is(err, services.ErrSelfMessage):
			return apiError(c, fiber.StatusBadRequest, "cannot message yourself")
		case errors.Is(err, services.ErrRecipientNotFound):
			return apiError(c, fiber.StatusNotFound, "recipient not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "send message failed")
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

func (handler *Handler) GetConversation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	partnerID, err := parseIDParam(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	messages, err := handler.messageService.Conversation(user.ID, partnerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load conversation failed")
	}
	return c.JSON(messages)
}

func (handler *Handler) ListConversations(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	partners, err := handler.messageService.ConversationPartners(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load conversations failed")
	}
	return c.JSON(fiber.Map{"partners": partners})
}
