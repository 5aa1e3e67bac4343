package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
)

// BusinessHandler handles owner-facing business operations.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler builds the business handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create godoc
// @Summary      Create a business profile
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateBusinessRequest  true  "name and chamber_id required"
// @Success      201   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.EligibilityErrorResponse
// @Router       /api/v1/businesses [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      List the caller's businesses, owned and shared
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        include_archived  query  bool  false  "include archived businesses"
// @Success      200  {object}  dto.BusinessListResponse
// @Router       /api/v1/businesses [get]
func (h *BusinessHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(GetUserID(c), c.QueryBool("include_archived"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get one business
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "business id"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id} [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Partially update a business
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "business id"
// @Param        body  body  dto.UpdateBusinessRequest  true  "fields to change"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id} [patch]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archive or restore a business
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "business id"
// @Param        body  body  object{archived=bool}  true  "archived flag"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/archive [post]
func (h *BusinessHandler) Archive(c *fiber.Ctx) error {
	var in struct {
		Archived bool `json:"archived"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetArchived(GetUserID(c), c.Params("id"), in.Archived); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Delete a business
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "business id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id} [delete]
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SimulatePayment godoc
// @Summary      Mark the business fee as paid (sandbox payment)
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "business id"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/simulate-payment [post]
func (h *BusinessHandler) SimulatePayment(c *fiber.Ctx) error {
	out, err := h.uc.SimulatePayment(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VerificationEligibility godoc
// @Summary      Check whether a business may be submitted for verification
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "business id"
// @Success      200  {object}  profile.Decision
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/verification-eligibility [get]
func (h *BusinessHandler) VerificationEligibility(c *fiber.Ctx) error {
	out, err := h.uc.VerificationEligibility(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
