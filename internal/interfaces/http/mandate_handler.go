package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mandatos-api/internal/application/dto"
	"github.com/jhoicas/Mandatos-api/internal/application/usecase"
)

// MandateHandler maneja el mandato de venta de cada propiedad (protegido).
type MandateHandler struct {
	uc *usecase.MandateUseCase
}

// NewMandateHandler construye el handler.
func NewMandateHandler(uc *usecase.MandateUseCase) *MandateHandler {
	return &MandateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear mandato de una propiedad aprobada
// @Tags         mandates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del expediente"
// @Param        body  body  dto.CreateMandateRequest  true  "Plazo, monto y moneda"
// @Success      201   {object}  dto.MandateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/properties/{id}/mandate [post]
func (h *MandateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMandateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener el mandato de una propiedad
// @Tags         mandates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del expediente"
// @Success      200  {object}  dto.MandateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/properties/{id}/mandate [get]
func (h *MandateHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByProperty(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Send godoc
// @Summary      Marcar el mandato como enviado
// @Tags         mandates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del expediente"
// @Success      200  {object}  dto.MandateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/properties/{id}/mandate/send [post]
func (h *MandateHandler) Send(c *fiber.Ctx) error {
	out, err := h.uc.Send(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sign godoc
// @Summary      Registrar la firma del mandato
// @Tags         mandates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del expediente"
// @Param        body  body  dto.SignMandateRequest  true  "Firmante y fecha"
// @Success      200   {object}  dto.MandateResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/properties/{id}/mandate/sign [post]
func (h *MandateHandler) Sign(c *fiber.Ctx) error {
	var in dto.SignMandateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Sign(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Void godoc
// @Summary      Anular el mandato (admin)
// @Tags         mandates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del expediente"
// @Success      200  {object}  dto.MandateResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/properties/{id}/mandate/void [post]
func (h *MandateHandler) Void(c *fiber.Ctx) error {
	out, err := h.uc.Void(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
