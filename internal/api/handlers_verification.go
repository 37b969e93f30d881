package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/services"
)

const (
	verifyAttemptLimit  = 8
	verifyAttemptWindow = 10 * time.Minute
)

type issueCodeInput struct {
	CollegeID uint `json:"college_id"`
	TTLHours  int  `json:"ttl_hours"`
	SingleUse bool `json:"single_use"`
}

func (handler *Handler) IssueVerificationCode(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	var input issueCodeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.CollegeID == 0 {
		return apiError(c, fiber.StatusBadRequest, "college_id required")
	}

	ttl := time.Duration(input.TTLHours) * time.Hour
	code, err := handler.verificationSvc.IssueCode(input.CollegeID, user.ID, ttl, input.SingleUse)
	if err != nil {
		if errors.Is(err, services.ErrCollegeNotFound) {
			return apiError(c, fiber.StatusNotFound, "college not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "issue code failed")
	}
	return c.Status(fiber.StatusCreated).JSON(code)
}

type verifyCollegeInput struct {
	CollegeID uint   `json:"college_id"`
	Code      string `json:"code"`
}

// VerifyCollege redeems a verification code. A bad code is reported as
// exactly that; storage trouble surfaces separately so the caller can tell
// "try again" from "typed it wrong".
func (handler *Handler) VerifyCollege(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.verifyLimiter.tooManyRecent(limiterKey, now, verifyAttemptLimit, verifyAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many verification attempts")
	}

	var input verifyCollegeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.CollegeID == 0 {
		return apiError(c, fiber.StatusBadRequest, "college_id required")
	}

	record, err := handler.verificationSvc.VerifyCollege(user.ID, input.CollegeID, input.Code)
	if err != nil {
		if errors.Is(err, services.ErrVerificationCodeInvalid) {
			handler.verifyLimiter.addFailure(limiterKey, now, verifyAttemptWindow)
			return apiError(c, fiber.StatusUnprocessableEntity, "invalid verification code")
		}
		return apiError(c, fiber.StatusInternalServerError, "verification failed")
	}

	handler.verifyLimiter.reset(limiterKey)
	return c.JSON(fiber.Map{"verified": true, "record": record})
}

func (handler *Handler) VerificationStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiDenied(c, fiber.StatusUnauthorized, "unauthorized", signInRoute)
	}

	record, err := handler.verificationSvc.RecordForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load verification state failed")
	}
	if record == nil {
		return c.JSON(fiber.Map{"verified": false})
	}
	return c.JSON(fiber.Map{"verified": record.IsVerified, "record": record})
}

func (handler *Handler) ListVerificationCodes(c *fiber.Ctx) error {
	collegeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid college id")
	}

	codes, err := handler.verificationSvc.ListCodes(collegeID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load codes failed")
	}
	return c.JSON(codes)
}
