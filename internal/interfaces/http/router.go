package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mandatos-api/internal/application/documents"
	"github.com/jhoicas/Mandatos-api/internal/application/usecase"
	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PropertyUC *usecase.PropertyUseCase
	MandateUC  *usecase.MandateUseCase
	DocumentUC *documents.MandateDocumentUseCase
	UserUC     *usecase.UserUseCase
	Logger     *logger.Logger
	JWTSecret  string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin, entity.RoleAsesor))
	adminOnly := RequireRole(entity.RoleAdmin)

	api.Get("/me", NewUserHandler(deps.UserUC).Me)

	// Expedientes
	properties := api.Group("/properties")
	propertyHandler := NewPropertyHandler(deps.PropertyUC)
	properties.Post("/", propertyHandler.Create)
	properties.Get("/", propertyHandler.List)
	properties.Get("/:id", propertyHandler.GetByID)
	properties.Put("/:id", propertyHandler.Update)
	properties.Post("/:id/submit", propertyHandler.Submit)
	properties.Post("/:id/approve", adminOnly, propertyHandler.Approve)
	properties.Post("/:id/reject", adminOnly, propertyHandler.Reject)

	// Mandato
	mandateHandler := NewMandateHandler(deps.MandateUC)
	properties.Post("/:id/mandate", mandateHandler.Create)
	properties.Get("/:id/mandate", mandateHandler.Get)
	properties.Post("/:id/mandate/send", mandateHandler.Send)
	properties.Post("/:id/mandate/sign", mandateHandler.Sign)
	properties.Post("/:id/mandate/void", adminOnly, mandateHandler.Void)

	// Documentos
	documentHandler := NewDocumentHandler(deps.PropertyUC, deps.DocumentUC, deps.Logger)
	properties.Get("/:id/mandate/docx", documentHandler.MandateDOCX)
	properties.Get("/:id/mandate/pdf", documentHandler.MandatePDF)
}
