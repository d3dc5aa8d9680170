package docx_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mandatos-api/internal/domain"
	"github.com/jhoicas/Mandatos-api/internal/infrastructure/docx"
)

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

// buildDocx arma un .docx mínimo con un párrafo por cada elemento de paragraphs;
// cada párrafo es la lista de textos de sus runs.
func buildDocx(t *testing.T, paragraphs ...[]string) []byte {
	t.Helper()
	var body strings.Builder
	for _, runs := range paragraphs {
		body.WriteString("<w:p>")
		for _, r := range runs {
			body.WriteString(`<w:r><w:rPr><w:b/></w:rPr><w:t>` + r + `</w:t></w:r>`)
		}
		body.WriteString("</w:p>")
	}
	return buildDocxBody(t, body.String())
}

// buildDocxBody arma un .docx cuyo w:body es el XML recibido.
func buildDocxBody(t *testing.T, body string) []byte {
	t.Helper()
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document ` + wordNS + `><w:body>` + body + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   document,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func documentXML(t *testing.T, docxBytes []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatal("word/document.xml no encontrado")
	return ""
}

func TestFill_SustituyePlaceholders(t *testing.T) {
	tpl := buildDocx(t,
		[]string{"Propietario: {{propietario1Nombre}}, DNI {{propietario1Dni}}"},
		[]string{"Monto: {{montoLegal}}"},
	)
	out, err := docx.Fill(tpl, map[string]string{
		"propietario1Nombre": "Ana Gómez",
		"propietario1Dni":    "12345678",
		"montoLegal":         "PESOS ARGENTINOS NOVENTA MIL (ARS 90.000)",
	})
	require.NoError(t, err)

	xml := documentXML(t, out)
	assert.Contains(t, xml, "Propietario: Ana Gómez, DNI 12345678")
	assert.Contains(t, xml, "Monto: PESOS ARGENTINOS NOVENTA MIL (ARS 90.000)")
	assert.NotContains(t, xml, "{{")
}

// Word parte los tags en varios runs cuando cambia el formato.
func TestFill_TagPartidoEnVariosRuns(t *testing.T) {
	tpl := buildDocx(t, []string{"Plazo: {", "{plazo", "Texto}", "} corridos"})
	out, err := docx.Fill(tpl, map[string]string{"plazoTexto": "tres (3) meses"})
	require.NoError(t, err)

	xml := documentXML(t, out)
	assert.Contains(t, xml, "Plazo: tres (3) meses")
	assert.Contains(t, xml, "> corridos<")
	assert.Contains(t, xml, `xml:space="preserve"`)
}

func TestFill_ClaveDesconocidaQuedaVacia(t *testing.T) {
	tpl := buildDocx(t, []string{"[{{noExiste}}]"})
	out, err := docx.Fill(tpl, map[string]string{})
	require.NoError(t, err)

	xml := documentXML(t, out)
	assert.Contains(t, xml, "[]")
	assert.NotContains(t, xml, "undefined")
}

func TestFill_AgrupaTodosLosErrores(t *testing.T) {
	tpl := buildDocx(t,
		[]string{"{{sinCerrar"},
		[]string{"cierre suelto}}"},
		[]string{"{{ }}"},
		[]string{"{{nombre con espacios}}"},
		[]string{"{{ok}} y {{otro {{anidado}}"},
	)
	_, err := docx.Fill(tpl, map[string]string{"ok": "x"})
	require.Error(t, err)

	var renderErr *domain.TemplateRenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Len(t, renderErr.Issues, 5, "se informan todos los errores, no solo el primero")
	for _, is := range renderErr.Issues {
		assert.Equal(t, "word/document.xml", is.Part)
		assert.NotEmpty(t, is.Message)
	}
}

func TestFill_NoEsZip(t *testing.T) {
	_, err := docx.Fill([]byte("no soy un docx"), nil)
	assert.Error(t, err)
}

func TestRender_PlantillaInexistente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-existe.docx")
	_, err := docx.NewTemplateRenderer(path).Render(context.Background(), nil)

	var missing *domain.TemplateMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, path, missing.Path)
}

func TestRender_DesdeDisco(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandato.docx")
	require.NoError(t, os.WriteFile(path, buildDocx(t, []string{"{{titulo}}"}), 0o600))

	out, err := docx.NewTemplateRenderer(path).Render(context.Background(), map[string]string{"titulo": "Casa en Funes"})
	require.NoError(t, err)
	assert.Contains(t, documentXML(t, out), "Casa en Funes")
}

func TestInspect_ListaTags(t *testing.T) {
	tpl := buildDocx(t,
		[]string{"{{titulo}} - {{", "localidad}}"},
		[]string{"{{titulo}} otra vez"},
	)
	names, err := docx.Inspect(tpl)
	require.NoError(t, err)
	assert.Equal(t, []string{"titulo", "localidad"}, names)
}

func TestInspect_ReportaErrores(t *testing.T) {
	tpl := buildDocx(t, []string{"{{ok}} {{sinCerrar"})
	names, err := docx.Inspect(tpl)

	var renderErr *domain.TemplateRenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Len(t, renderErr.Issues, 1)
	assert.Empty(t, names, "un párrafo con errores no aporta tags")
}

// textBox arma un párrafo con texto propio y un cuadro de texto con un párrafo interno.
func textBox(outer, inner string) string {
	return `<w:p><w:r><w:t>` + outer + `</w:t></w:r>` +
		`<w:r><w:pict><w:txbxContent><w:p><w:r><w:t>` + inner + `</w:t></w:r></w:p></w:txbxContent></w:pict></w:r></w:p>`
}

func TestFill_CuadroDeTextoSeProcesaUnaSolaVez(t *testing.T) {
	tpl := buildDocxBody(t, textBox("Expediente {{localidad}}", "{{titulo}}"))
	out, err := docx.Fill(tpl, map[string]string{
		"titulo":    "Lote {{A}} norte",
		"localidad": "Funes",
	})
	require.NoError(t, err)

	xml := documentXML(t, out)
	assert.Contains(t, xml, "Lote {{A}} norte", "el texto del usuario no se vuelve a escanear")
	assert.Contains(t, xml, "Expediente Funes")
}

func TestFill_CuadroDeTextoErrorUnaVez(t *testing.T) {
	tpl := buildDocxBody(t, textBox("fuera", "{{mal"))
	_, err := docx.Fill(tpl, nil)

	var renderErr *domain.TemplateRenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Len(t, renderErr.Issues, 1)
}

func TestInspect_CuadroDeTexto(t *testing.T) {
	tpl := buildDocxBody(t, textBox("{{localidad}}", "{{titulo}}"))
	names, err := docx.Inspect(tpl)
	require.NoError(t, err)
	assert.Equal(t, []string{"localidad", "titulo"}, names)
}
