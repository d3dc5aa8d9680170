// Package pdf implementa la versión PDF del mandato de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Mandato de venta + fecha                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROPIEDAD: expediente, título, propietario, estado         │
//	│  MANDATO: plazo, monto, estado, observaciones, firma        │
//	│  ASESOR: nombre + email                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha y hora de generación                          │
//	└─────────────────────────────────────────────────────────────┘
//
// Maroto pasa a una nueva página cuando las filas no entran.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Mandatos-api/internal/application/documents"
	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/domain/mandato"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ documents.MandatePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa documents.MandatePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	agency string
}

// NewMarotoPDFGenerator construye el generador; agency se usa como autor del PDF.
func NewMarotoPDFGenerator(agency string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{agency: agency}
}

// GenerateMandatePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateMandatePDF(_ context.Context, data documents.MandatePDFData) ([]byte, error) {
	if data.Property == nil || data.Mandate == nil {
		return nil, fmt.Errorf("pdf: expediente y mandato son obligatorios")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Mandato de venta - "+data.Property.Title, true).
		WithAuthor(g.agency, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(data))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("DATOS DE LA PROPIEDAD"))
	m.AddRows(propertyRows(data)...)

	m.AddRows(sectionRow("DATOS DEL MANDATO"))
	m.AddRows(mandateRows(data)...)

	m.AddRows(sectionRow("ASESOR"))
	m.AddRows(advisorRows(data.Property.Advisor)...)

	m.AddRows(line.NewRow(6))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(data documents.MandatePDFData) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New("MANDATO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
			text.New(data.Property.Title, props.Text{Size: 10, Top: 11, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Fecha: "+data.Context.FechaActual, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 4,
		}),
	))
}

// fieldRow: etiqueta en negrita (izq) y valor (der).
func fieldRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(8).Add(text.New(nonEmpty(value, "—"), props.Text{Size: 9, Top: 1})),
	)
}

// paragraphRow: texto libre de ancho completo (descripción, observaciones).
func paragraphRow(label, value string) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}))),
		row.New(paragraphHeight(value)).Add(col.New(12).Add(text.New(value, props.Text{Size: 9, Top: 1}))),
	}
}

// paragraphHeight estima el alto (mm) de un texto libre a tamaño 9 en el ancho útil de A4.
func paragraphHeight(s string) float64 {
	const charsPerLine, lineHeight = 95, 4.5
	lines := len([]rune(s))/charsPerLine + 1
	for _, r := range s {
		if r == '\n' {
			lines++
		}
	}
	return float64(lines)*lineHeight + 2
}

func propertyRows(data documents.MandatePDFData) []core.Row {
	p := data.Property
	owner := ""
	if len(data.Owners) > 0 {
		owner = data.Owners[0].FullName
	}
	rows := []core.Row{
		fieldRow("Expediente N°:", p.ID),
		fieldRow("Título:", p.Title),
		fieldRow("Propietario:", owner),
		fieldRow("Estado:", statusLabel(p.Status)),
	}
	if p.Description != "" {
		rows = append(rows, paragraphRow("Descripción:", p.Description)...)
	}
	return rows
}

func mandateRows(data documents.MandatePDFData) []core.Row {
	md := data.Mandate
	rows := []core.Row{
		fieldRow("Mandato N°:", md.ID),
		fieldRow("Plazo:", data.Context.PlazoTexto),
		fieldRow("Monto:", md.Currency+" "+data.Context.MontoNumero),
		fieldRow("Estado:", statusLabel(md.Status)),
	}
	if md.Notes != "" {
		rows = append(rows, paragraphRow("Observaciones:", md.Notes)...)
	}
	if md.IsSigned() {
		rows = append(rows,
			fieldRow("Firmado por:", md.SignedBy),
			fieldRow("Fecha de firma:", mandato.FormatDate(md.SignedAt)),
		)
	}
	return rows
}

func advisorRows(a *entity.Advisor) []core.Row {
	if a == nil {
		a = &entity.Advisor{}
	}
	return []core.Row{
		fieldRow("Nombre:", a.Name),
		fieldRow("Email:", a.Email),
	}
}

func footerRow(data documents.MandatePDFData) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(generatedLabel(data.GeneratedAt), props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 2}),
	))
}

func generatedLabel(t time.Time) string {
	return "Documento generado el " + mandato.InArgentina(t).Format("02/01/2006 15:04")
}

// ── helpers ───────────────────────────────────────────────────────────────────

var statusLabels = map[string]string{
	entity.PropertyStatusInPreparation: "En preparación",
	entity.PropertyStatusPending:       "Pendiente",
	entity.PropertyStatusApproved:      "Aprobado",
	entity.PropertyStatusRejected:      "Rechazado",
	entity.MandateStatusDraft:          "Borrador",
	entity.MandateStatusSent:           "Enviado",
	entity.MandateStatusSigned:         "Firmado",
	entity.MandateStatusVoid:           "Anulado",
}

func statusLabel(s string) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return s
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
