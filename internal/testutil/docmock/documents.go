// Package docmock tiene mocks de los puertos de generación de documentos.
package docmock

import (
	"context"

	"github.com/jhoicas/Mandatos-api/internal/application/documents"
)

var (
	_ documents.DocxRenderer        = (*DocxRenderer)(nil)
	_ documents.MandatePDFGenerator = (*PDFGenerator)(nil)
)

// DocxRenderer mock que guarda los valores recibidos en Values.
type DocxRenderer struct {
	RenderFn func(ctx context.Context, values map[string]string) ([]byte, error)
	Values   map[string]string
}

func (m *DocxRenderer) Render(ctx context.Context, values map[string]string) ([]byte, error) {
	m.Values = values
	if m.RenderFn != nil {
		return m.RenderFn(ctx, values)
	}
	return []byte("PK-docx"), nil
}

// PDFGenerator mock que guarda los datos recibidos en Data.
type PDFGenerator struct {
	GenerateFn func(ctx context.Context, data documents.MandatePDFData) ([]byte, error)
	Data       *documents.MandatePDFData
}

func (m *PDFGenerator) GenerateMandatePDF(ctx context.Context, data documents.MandatePDFData) ([]byte, error) {
	m.Data = &data
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, data)
	}
	return []byte("%PDF-1.3"), nil
}
