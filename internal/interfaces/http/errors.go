package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
	"github.com/msmepassport/msme-passport-api/internal/domain"
)

// respondError maps domain errors to HTTP responses. Eligibility refusals
// carry the full decision (code, completion, missing fields); everything else
// is the flat code + message body.
func respondError(c *fiber.Ctx, err error) error {
	var eligErr *usecase.EligibilityError
	if errors.As(err, &eligErr) {
		d := eligErr.Decision
		return c.Status(fiber.StatusForbidden).JSON(dto.EligibilityErrorResponse{
			Code:          d.Code,
			Message:       d.Reason,
			Completion:    d.Completion,
			MissingFields: d.MissingFields,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", err)
	case errors.Is(err, domain.ErrRejectionReason):
		return respond(c, fiber.StatusBadRequest, "REJECTION_REASON_REQUIRED", err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return respond(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return respond(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err)
	case errors.Is(err, domain.ErrEmailNotVerified):
		return respond(c, fiber.StatusForbidden, "EMAIL_NOT_VERIFIED", err)
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, "FORBIDDEN", err)
	case errors.Is(err, domain.ErrSelfInvitation):
		return respond(c, fiber.StatusBadRequest, "SELF_INVITATION", err)
	case errors.Is(err, domain.ErrUserNotFound):
		return respond(c, fiber.StatusNotFound, "USER_NOT_FOUND", err)
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", err)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respond(c, fiber.StatusConflict, "EMAIL_EXISTS", err)
	case errors.Is(err, domain.ErrInvitationPending):
		return respond(c, fiber.StatusConflict, "INVITATION_PENDING", err)
	case errors.Is(err, domain.ErrInvitationResolved):
		return respond(c, fiber.StatusConflict, "INVITATION_RESOLVED", err)
	case errors.Is(err, domain.ErrInvitationExpired):
		return respond(c, fiber.StatusGone, "INVITATION_EXPIRED", err)
	case errors.Is(err, domain.ErrBusinessRejected):
		return respond(c, fiber.StatusConflict, "BUSINESS_REJECTED", err)
	case errors.Is(err, domain.ErrConflict):
		return respond(c, fiber.StatusConflict, "CONFLICT", err)
	case errors.Is(err, domain.ErrDuplicate):
		return respond(c, fiber.StatusConflict, "DUPLICATE", err)
	case errors.Is(err, domain.ErrTokenExpired):
		return respond(c, fiber.StatusGone, "TOKEN_EXPIRED", err)
	case errors.Is(err, domain.ErrTokenInvalid):
		return respond(c, fiber.StatusBadRequest, "TOKEN_INVALID", err)
	case errors.Is(err, domain.ErrPassportInvalid):
		// Deliberately generic: not-found and not-eligible are indistinguishable.
		return respond(c, fiber.StatusNotFound, "PASSPORT_INVALID", err)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
	}
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
}
