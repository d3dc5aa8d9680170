package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mandatos-api/internal/application/documents"
	"github.com/jhoicas/Mandatos-api/internal/application/dto"
	"github.com/jhoicas/Mandatos-api/internal/application/usecase"
	"github.com/jhoicas/Mandatos-api/internal/domain"
	"github.com/jhoicas/Mandatos-api/pkg/logger"
)

const templateHint = "Revise la plantilla: cada campo debe escribirse como {{nombreCampo}}, sin espacios ni llaves sueltas."

// DocumentHandler descarga el mandato de venta en DOCX o PDF.
type DocumentHandler struct {
	properties *usecase.PropertyUseCase
	docs       *documents.MandateDocumentUseCase
	log        *logger.Logger
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(properties *usecase.PropertyUseCase, docs *documents.MandateDocumentUseCase, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{properties: properties, docs: docs, log: log}
}

// MandateDOCX godoc
// @Summary      Descargar mandato en Word
// @Tags         documents
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        id   path  string  true  "ID del expediente"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.DocumentErrorResponse
// @Failure      409  {object}  dto.DocumentErrorResponse
// @Failure      500  {object}  dto.DocumentErrorResponse
// @Router       /api/properties/{id}/mandate/docx [get]
func (h *DocumentHandler) MandateDOCX(c *fiber.Ctx) error {
	return h.download(c, h.docs.GenerateDOCX)
}

// MandatePDF godoc
// @Summary      Descargar mandato en PDF
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del expediente"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.DocumentErrorResponse
// @Failure      409  {object}  dto.DocumentErrorResponse
// @Failure      500  {object}  dto.DocumentErrorResponse
// @Router       /api/properties/{id}/mandate/pdf [get]
func (h *DocumentHandler) MandatePDF(c *fiber.Ctx) error {
	return h.download(c, h.docs.GeneratePDF)
}

type generateFunc func(ctx context.Context, propertyID string) (*documents.Document, error)

// download genera el documento completo en memoria y recién entonces escribe
// la respuesta; ante un error el cliente recibe solo el JSON.
func (h *DocumentHandler) download(c *fiber.Ctx, generate generateFunc) error {
	id := c.Params("id")
	if err := h.properties.CheckAccess(c.UserContext(), actorFrom(c), id); err != nil {
		return h.documentError(c, id, err)
	}
	doc, err := generate(c.UserContext(), id)
	if err != nil {
		return h.documentError(c, id, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Status(fiber.StatusOK).Send(doc.Content)
}

func (h *DocumentHandler) documentError(c *fiber.Ctx, propertyID string, err error) error {
	var (
		missing   *domain.TemplateMissingError
		renderErr *domain.TemplateRenderError
	)
	switch {
	case errors.Is(err, domain.ErrMandateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.DocumentErrorResponse{
			Code:     "MANDATE_NOT_FOUND",
			Error:    "La propiedad no tiene mandato",
			Detalles: "Cree el mandato antes de generar el documento.",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.DocumentErrorResponse{Code: "NOT_FOUND", Error: "Propiedad no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.DocumentErrorResponse{Code: "FORBIDDEN", Error: "Sin acceso a esta propiedad"})
	case errors.Is(err, domain.ErrPrecondition):
		return c.Status(fiber.StatusConflict).JSON(dto.DocumentErrorResponse{
			Code:     "PRECONDITION",
			Error:    "No se puede generar el mandato",
			Detalles: err.Error(),
		})
	case errors.As(err, &missing):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DocumentErrorResponse{
			Code:     "TEMPLATE_MISSING",
			Error:    "Plantilla de mandato no disponible",
			Detalles: "Falta el archivo de plantilla en el servidor; contacte al administrador.",
		})
	case errors.As(err, &renderErr):
		h.log.Error().Str("property_id", propertyID).Int("errores", len(renderErr.Issues)).
			Msg("plantilla de mandato con errores")
		issues := make([]dto.TemplateIssueDTO, 0, len(renderErr.Issues))
		for _, is := range renderErr.Issues {
			issues = append(issues, dto.TemplateIssueDTO{Parte: is.Part, Tag: is.Tag, Mensaje: is.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DocumentErrorResponse{
			Code:     "TEMPLATE_RENDER",
			Error:    "La plantilla del mandato tiene errores",
			Detalles: templateHint,
			Errores:  issues,
		})
	}
	h.log.Error().Err(err).Str("property_id", propertyID).Msg("generación de mandato fallida")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.DocumentErrorResponse{
		Code:     "DOCUMENT_GENERATION",
		Error:    "Error generando el documento",
		Detalles: err.Error(),
	})
}
