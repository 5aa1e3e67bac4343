package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
)

// PassportHandler handles passport issuance and the public verification
// endpoints.
type PassportHandler struct {
	uc *usecase.PassportUseCase
}

// NewPassportHandler builds the passport handler.
func NewPassportHandler(uc *usecase.PassportUseCase) *PassportHandler {
	return &PassportHandler{uc: uc}
}

// Issue godoc
// @Summary      Issue (or return the existing) passport for a business
// @Tags         passports
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "business id"
// @Success      200  {object}  dto.PassportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/passport [post]
func (h *PassportHandler) Issue(c *fiber.Ctx) error {
	out, err := h.uc.Issue(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QRCodePNG godoc
// @Summary      Render the passport QR code as a PNG
// @Tags         passports
// @Produce      png
// @Security     BearerAuth
// @Param        id    path   string  true   "business id"
// @Param        size  query  int     false  "image size in pixels (default 256)"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/passport/qr [get]
func (h *PassportHandler) QRCodePNG(c *fiber.Ctx) error {
	png, err := h.uc.QRCodePNG(GetUserID(c), c.Params("id"), c.QueryInt("size"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// CardPDF godoc
// @Summary      Download the printable passport card
// @Tags         passports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "business id"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/passport/card [get]
func (h *PassportHandler) CardPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.PassportCardPDF(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// VerifyScan godoc
// @Summary      Verify a scanned QR payload against the live registry
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyScanRequest  true  "raw scanned payload"
// @Success      200   {object}  dto.VerifiedBusinessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/verify-business [post]
func (h *PassportHandler) VerifyScan(c *fiber.Ctx) error {
	var in dto.VerifyScanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.VerifyScan(in.Payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VerifyByPassportID godoc
// @Summary      Verify a passport identifier from a shared link
// @Tags         verification
// @Produce      json
// @Param        passportId  path  string  true  "passport identifier, e.g. MP-0A1B2C3D-2025"
// @Success      200  {object}  dto.VerifiedBusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/verify-business/{passportId} [get]
func (h *PassportHandler) VerifyByPassportID(c *fiber.Ctx) error {
	out, err := h.uc.VerifyByPassportID(c.Params("passportId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
