package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Mandatos-api/internal/domain"
	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/domain/mandato"
	"github.com/jhoicas/Mandatos-api/internal/domain/repository"
	"github.com/jhoicas/Mandatos-api/pkg/logger"
)

// Tipos MIME de los documentos generados.
const (
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypePDF  = "application/pdf"
)

// Document es un documento ya renderizado, listo para enviarse completo.
type Document struct {
	Content     []byte
	Filename    string
	ContentType string
}

// MandateDocumentUseCase genera el mandato de venta (DOCX o PDF) de una propiedad.
// No verifica permisos: el handler ya decidió que el usuario puede descargarlo.
type MandateDocumentUseCase struct {
	propertyRepo repository.PropertyRepository
	mandateRepo  repository.MandateRepository
	docx         DocxRenderer
	pdf          MandatePDFGenerator
	log          *logger.Logger
	now          func() time.Time
}

// NewMandateDocumentUseCase construye el caso de uso inyectando todas sus dependencias.
func NewMandateDocumentUseCase(
	propertyRepo repository.PropertyRepository,
	mandateRepo repository.MandateRepository,
	docx DocxRenderer,
	pdf MandatePDFGenerator,
	log *logger.Logger,
) *MandateDocumentUseCase {
	return &MandateDocumentUseCase{
		propertyRepo: propertyRepo,
		mandateRepo:  mandateRepo,
		docx:         docx,
		pdf:          pdf,
		log:          log,
		now:          time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *MandateDocumentUseCase) WithClock(now func() time.Time) *MandateDocumentUseCase {
	uc.now = now
	return uc
}

// sources agrupa lo cargado desde la base para un render.
type sources struct {
	property *entity.Property
	mandate  *entity.Mandate
	owners   []entity.Owner
	context  mandato.TemplateContext
	now      time.Time
}

// load recupera expediente y mandato y arma el contexto de la plantilla.
//
// Retorna:
//   - domain.ErrNotFound         si la propiedad no existe.
//   - domain.ErrMandateNotFound  si la propiedad no tiene mandato.
//   - domain.ErrPrecondition     si la propiedad no está aprobada o el mandato está anulado.
func (uc *MandateDocumentUseCase) load(ctx context.Context, propertyID string) (*sources, error) {
	// ── 1. Cargar expediente ──────────────────────────────────────────────────
	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("documento: obtener propiedad: %w", err)
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}

	// ── 2. Cargar mandato ─────────────────────────────────────────────────────
	mandate, err := uc.mandateRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("documento: obtener mandato: %w", err)
	}
	if mandate == nil {
		return nil, domain.ErrMandateNotFound
	}

	// ── 3. Validar que se puede presentar ─────────────────────────────────────
	if property.Status != entity.PropertyStatusApproved {
		return nil, fmt.Errorf("%w: la propiedad está en estado %s, debe estar aprobada",
			domain.ErrPrecondition, property.Status)
	}
	if mandate.Status == entity.MandateStatusVoid {
		return nil, fmt.Errorf("%w: el mandato está anulado", domain.ErrPrecondition)
	}

	// ── 4. Contexto de la plantilla ───────────────────────────────────────────
	now := uc.now()
	owners := mandato.ParseOwners(property.OwnersJSON)
	return &sources{
		property: property,
		mandate:  mandate,
		owners:   owners,
		context:  mandato.Assemble(property, mandate, owners, now),
		now:      now,
	}, nil
}

// GenerateDOCX rellena la plantilla Word del mandato.
//
// Además de los errores de load:
//   - *domain.TemplateMissingError  si la plantilla no está desplegada.
//   - *domain.TemplateRenderError   con todos los tags mal formados.
func (uc *MandateDocumentUseCase) GenerateDOCX(ctx context.Context, propertyID string) (*Document, error) {
	src, err := uc.load(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	content, err := uc.docx.Render(ctx, src.context.Values())
	if err != nil {
		var missing *domain.TemplateMissingError
		if errors.As(err, &missing) {
			uc.log.Error().Str("path", missing.Path).Str("property_id", propertyID).
				Msg("plantilla de mandato no encontrada")
		}
		return nil, err
	}
	uc.log.Info().Str("property_id", propertyID).Int("bytes", len(content)).Msg("mandato DOCX generado")
	return &Document{
		Content:     content,
		Filename:    MandateFilename(src.property.Title, src.property.ID, "docx"),
		ContentType: ContentTypeDOCX,
	}, nil
}

// GeneratePDF dibuja el mandato como PDF.
func (uc *MandateDocumentUseCase) GeneratePDF(ctx context.Context, propertyID string) (*Document, error) {
	src, err := uc.load(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	content, err := uc.pdf.GenerateMandatePDF(ctx, MandatePDFData{
		Property:    src.property,
		Mandate:     src.mandate,
		Owners:      src.owners,
		Context:     src.context,
		GeneratedAt: src.now,
	})
	if err != nil {
		return nil, fmt.Errorf("documento: generación PDF fallida: %w", err)
	}
	uc.log.Info().Str("property_id", propertyID).Int("bytes", len(content)).Msg("mandato PDF generado")
	return &Document{
		Content:     content,
		Filename:    MandateFilename(src.property.Title, src.property.ID, "pdf"),
		ContentType: ContentTypePDF,
	}, nil
}
