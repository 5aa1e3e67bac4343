package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
)

// AffiliateHandler handles chambers and associations.
type AffiliateHandler struct {
	uc *usecase.AffiliateUseCase
}

// NewAffiliateHandler builds the affiliate handler.
func NewAffiliateHandler(uc *usecase.AffiliateUseCase) *AffiliateHandler {
	return &AffiliateHandler{uc: uc}
}

// List godoc
// @Summary      List chambers and associations
// @Tags         affiliates
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "page size"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {object}  dto.AffiliateListResponse
// @Router       /api/v1/affiliates [get]
func (h *AffiliateHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get one affiliate
// @Tags         affiliates
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "affiliate id"
// @Success      200  {object}  dto.AffiliateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/affiliates/{id} [get]
func (h *AffiliateHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "affiliate not found"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Register a chamber or association (admin only)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAffiliateRequest  true  "name, region"
// @Success      201   {object}  dto.AffiliateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/admin/affiliates [post]
func (h *AffiliateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAffiliateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
