package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
)

// CollaborationHandler handles the invite/accept/reject workflow and the
// resulting grants.
type CollaborationHandler struct {
	uc *usecase.CollaborationUseCase
}

// NewCollaborationHandler builds the collaboration handler.
func NewCollaborationHandler(uc *usecase.CollaborationUseCase) *CollaborationHandler {
	return &CollaborationHandler{uc: uc}
}

// SendInvitation godoc
// @Summary      Invite a registered user to co-manage a business
// @Tags         collaborations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SendInvitationRequest  true  "business_id, invitee_email, optional message"
// @Success      201   {object}  dto.InvitationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.EligibilityErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/invitations [post]
func (h *CollaborationHandler) SendInvitation(c *fiber.Ctx) error {
	var in dto.SendInvitationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SendInvitation(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMyInvitations godoc
// @Summary      List invitations addressed to the caller
// @Tags         collaborations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.InvitationResponse
// @Router       /api/v1/invitations [get]
func (h *CollaborationHandler) ListMyInvitations(c *fiber.Ctx) error {
	out, err := h.uc.ListMyInvitations(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Accept godoc
// @Summary      Accept a pending invitation
// @Tags         collaborations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "invitation id"
// @Success      200  {object}  dto.CollaborationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Router       /api/v1/invitations/{id}/accept [post]
func (h *CollaborationHandler) Accept(c *fiber.Ctx) error {
	out, err := h.uc.Accept(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Reject a pending invitation
// @Tags         collaborations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "invitation id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Router       /api/v1/invitations/{id}/reject [post]
func (h *CollaborationHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.Reject(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBusinessInvitations godoc
// @Summary      List a business's invitation history (owner only)
// @Tags         collaborations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "business id"
// @Success      200  {array}  dto.InvitationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/invitations [get]
func (h *CollaborationHandler) ListBusinessInvitations(c *fiber.Ctx) error {
	out, err := h.uc.ListBusinessInvitations(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCollaborators godoc
// @Summary      List the collaboration grants on a business
// @Tags         collaborations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "business id"
// @Success      200  {array}  dto.CollaborationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/collaborators [get]
func (h *CollaborationHandler) ListCollaborators(c *fiber.Ctx) error {
	out, err := h.uc.ListCollaborators(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveCollaborator godoc
// @Summary      Revoke a collaboration grant (owner only)
// @Tags         collaborations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "collaboration id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/collaborations/{id} [delete]
func (h *CollaborationHandler) RemoveCollaborator(c *fiber.Ctx) error {
	if err := h.uc.RemoveCollaborator(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
