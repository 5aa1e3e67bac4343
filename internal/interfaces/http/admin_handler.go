package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
)

// AdminHandler handles administrator review actions.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler builds the admin handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers godoc
// @Summary      List user accounts with derived completion
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "page size"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListUsers(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetUserVerified godoc
// @Summary      Set or clear the admin attestation on a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "user id"
// @Param        body  body  object{verified=bool}  true  "verified flag"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/admin/users/{id}/verify [post]
func (h *AdminHandler) SetUserVerified(c *fiber.Ctx) error {
	var in struct {
		Verified bool `json:"verified"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetUserVerified(c.Params("id"), in.Verified)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBusinesses godoc
// @Summary      List businesses; under_review=true filters to the review queue
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        under_review  query  bool  false  "only unverified, unrejected businesses"
// @Param        limit         query  int   false  "page size"
// @Param        offset        query  int   false  "page offset"
// @Success      200  {object}  dto.BusinessListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/businesses [get]
func (h *AdminHandler) ListBusinesses(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	var out *dto.BusinessListResponse
	var err error
	if c.QueryBool("under_review") {
		out, err = h.uc.ListBusinessesUnderReview(page.Limit, page.Offset)
	} else {
		out, err = h.uc.ListBusinesses(page.Limit, page.Offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VerifyBusiness godoc
// @Summary      Set or clear the verified flag on a business
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "business id"
// @Param        body  body  dto.VerifyBusinessRequest  true  "verified flag + payment status"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      403   {object}  dto.EligibilityErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/admin/businesses/{id}/verify [post]
func (h *AdminHandler) VerifyBusiness(c *fiber.Ctx) error {
	var in dto.VerifyBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.VerifyBusiness(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetRejection godoc
// @Summary      Reject a business or clear its rejection
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "business id"
// @Param        body  body  dto.RejectBusinessRequest  true  "rejected flag + reason"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/admin/businesses/{id}/reject [post]
func (h *AdminHandler) SetRejection(c *fiber.Ctx) error {
	var in dto.RejectBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetRejection(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
