package documents

import (
	"context"
	"time"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/domain/mandato"
)

// DocxRenderer rellena la plantilla Word del mandato con el contexto aplanado.
type DocxRenderer interface {
	Render(ctx context.Context, values map[string]string) ([]byte, error)
}

// MandatePDFData datos ya resueltos que necesita el generador PDF.
type MandatePDFData struct {
	Property    *entity.Property
	Mandate     *entity.Mandate
	Owners      []entity.Owner
	Context     mandato.TemplateContext
	GeneratedAt time.Time
}

// MandatePDFGenerator dibuja el mandato como PDF.
type MandatePDFGenerator interface {
	GenerateMandatePDF(ctx context.Context, data MandatePDFData) ([]byte, error)
}
