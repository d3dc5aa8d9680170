// Package docx rellena plantillas Word (.docx) con placeholders {{clave}}.
//
// Un .docx es un zip con partes XML. Se procesan document.xml, encabezados y
// pies de página: por cada párrafo (w:p) se concatena el texto de sus runs
// (w:t), se buscan los tags sobre el texto completo (Word suele partir un
// {{tag}} en varios runs al aplicar formato) y se reescriben los runs
// afectados. El resto de las partes se copian sin tocar.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"

	"github.com/jhoicas/Mandatos-api/internal/domain"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

var tagName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// partes del paquete que pueden contener placeholders.
var templatedPart = regexp.MustCompile(`^word/(document|header\d*|footer\d*|footnotes|endnotes)\.xml$`)

// TemplateRenderer rellena una plantilla .docx ubicada en disco.
type TemplateRenderer struct {
	path string
}

// NewTemplateRenderer construye el renderer para la plantilla en path.
// La plantilla se lee en cada Render: no hay estado compartido entre requests.
func NewTemplateRenderer(path string) *TemplateRenderer {
	return &TemplateRenderer{path: path}
}

// Path devuelve la ruta configurada de la plantilla.
func (r *TemplateRenderer) Path() string { return r.path }

// Render carga la plantilla, sustituye los placeholders y devuelve el .docx resultante.
//   - *domain.TemplateMissingError  si el archivo no existe.
//   - *domain.TemplateRenderError   con todos los tags mal formados.
func (r *TemplateRenderer) Render(_ context.Context, values map[string]string) ([]byte, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.TemplateMissingError{Path: r.path}
		}
		return nil, fmt.Errorf("docx: leer plantilla %s: %w", r.path, err)
	}
	return Fill(raw, values)
}

// Fill aplica values sobre el contenido de un .docx en memoria.
func Fill(template []byte, values map[string]string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("docx: plantilla no es un zip válido: %w", err)
	}

	var issues []domain.TemplateIssue
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range zr.File {
		content, err := readEntry(f)
		if err != nil {
			return nil, err
		}
		if templatedPart.MatchString(f.Name) {
			var partIssues []domain.TemplateIssue
			content, partIssues, err = fillPart(f.Name, content, values)
			if err != nil {
				return nil, err
			}
			issues = append(issues, partIssues...)
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate, Modified: f.Modified})
		if err != nil {
			return nil, fmt.Errorf("docx: crear entrada %s: %w", f.Name, err)
		}
		if _, err := w.Write(content); err != nil {
			return nil, fmt.Errorf("docx: escribir entrada %s: %w", f.Name, err)
		}
	}
	if len(issues) > 0 {
		return nil, &domain.TemplateRenderError{Issues: issues}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: cerrar archivo: %w", err)
	}
	return buf.Bytes(), nil
}

// Inspect lista los nombres de tags de la plantilla sin modificarla, en orden
// de aparición y sin repetir. Los tags mal formados vuelven en un
// *domain.TemplateRenderError, igual que en Fill.
func Inspect(template []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("docx: plantilla no es un zip válido: %w", err)
	}
	var names []string
	var issues []domain.TemplateIssue
	seen := make(map[string]bool)
	for _, f := range zr.File {
		if !templatedPart.MatchString(f.Name) {
			continue
		}
		content, err := readEntry(f)
		if err != nil {
			return nil, err
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(content); err != nil {
			return nil, fmt.Errorf("docx: XML inválido en %s: %w", f.Name, err)
		}
		for _, p := range doc.FindElements("//w:p") {
			var sb strings.Builder
			for _, r := range paragraphRuns(p) {
				sb.WriteString(r.Text())
			}
			tags, pIssues := scanTags(sb.String())
			for _, is := range pIssues {
				is.Part = f.Name
				issues = append(issues, is)
			}
			if len(pIssues) > 0 {
				continue
			}
			for _, t := range tags {
				if !seen[t.name] {
					seen[t.name] = true
					names = append(names, t.name)
				}
			}
		}
	}
	if len(issues) > 0 {
		return names, &domain.TemplateRenderError{Issues: issues}
	}
	return names, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("docx: abrir %s: %w", f.Name, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("docx: leer %s: %w", f.Name, err)
	}
	return b, nil
}

func fillPart(name string, content []byte, values map[string]string) ([]byte, []domain.TemplateIssue, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, nil, fmt.Errorf("docx: XML inválido en %s: %w", name, err)
	}
	var issues []domain.TemplateIssue
	changed := false
	for _, p := range doc.FindElements("//w:p") {
		runs := paragraphRuns(p)
		if len(runs) == 0 {
			continue
		}
		ok, pIssues := fillParagraph(runs, values)
		for i := range pIssues {
			pIssues[i].Part = name
		}
		issues = append(issues, pIssues...)
		changed = changed || ok
	}
	if !changed {
		return content, issues, nil
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, nil, fmt.Errorf("docx: serializar %s: %w", name, err)
	}
	return out, issues, nil
}

// paragraphRuns devuelve los w:t propios del párrafo. Los de párrafos
// anidados (cuadros de texto, w:txbxContent) pertenecen a esos párrafos y se
// procesan cuando se los visita.
func paragraphRuns(p *etree.Element) []*etree.Element {
	var runs []*etree.Element
	for _, t := range p.FindElements(".//w:t") {
		if owningParagraph(t) == p {
			runs = append(runs, t)
		}
	}
	return runs
}

func owningParagraph(e *etree.Element) *etree.Element {
	for a := e.Parent(); a != nil; a = a.Parent() {
		if a.Space == "w" && a.Tag == "p" {
			return a
		}
	}
	return nil
}

// tag ubicado sobre el texto concatenado del párrafo; [start, end) incluye los delimitadores.
type tag struct {
	name       string
	start, end int
}

// fillParagraph sustituye los tags de un párrafo. Devuelve si hubo cambios y
// los errores de sintaxis encontrados.
func fillParagraph(runs []*etree.Element, values map[string]string) (bool, []domain.TemplateIssue) {
	texts := make([]string, len(runs))
	offsets := make([]int, len(runs)) // posición de inicio de cada run en full
	var sb strings.Builder
	for i, r := range runs {
		texts[i] = r.Text()
		offsets[i] = sb.Len()
		sb.WriteString(texts[i])
	}
	full := sb.String()
	if !strings.Contains(full, openDelim) && !strings.Contains(full, closeDelim) {
		return false, nil
	}

	tags, issues := scanTags(full)
	if len(issues) > 0 || len(tags) == 0 {
		return false, issues
	}

	// De atrás hacia adelante: las posiciones previas no se desplazan.
	for i := len(tags) - 1; i >= 0; i-- {
		t := tags[i]
		first, last := runAt(offsets, t.start), runAt(offsets, t.end-1)
		localStart := t.start - offsets[first]
		localEnd := t.end - offsets[last]
		value := values[t.name]

		if first == last {
			texts[first] = texts[first][:localStart] + value + texts[first][localEnd:]
			continue
		}
		texts[first] = texts[first][:localStart] + value
		for j := first + 1; j < last; j++ {
			texts[j] = ""
		}
		texts[last] = texts[last][localEnd:]
	}

	for i, r := range runs {
		if r.Text() == texts[i] {
			continue
		}
		r.SetText(texts[i])
		if r.SelectAttr("xml:space") == nil {
			r.CreateAttr("xml:space", "preserve")
		}
	}
	return true, nil
}

// runAt devuelve el índice del run que contiene la posición pos.
func runAt(offsets []int, pos int) int {
	idx := 0
	for i, off := range offsets {
		if off <= pos {
			idx = i
		}
	}
	return idx
}

// scanTags recorre el texto y devuelve los tags bien formados o la lista
// completa de errores (tag sin cerrar, cierre sin apertura, anidado, nombre inválido).
func scanTags(s string) ([]tag, []domain.TemplateIssue) {
	var tags []tag
	var issues []domain.TemplateIssue
	i := 0
	for i < len(s) {
		open := strings.Index(s[i:], openDelim)
		cls := strings.Index(s[i:], closeDelim)

		if cls != -1 && (open == -1 || cls < open) {
			issues = append(issues, domain.TemplateIssue{
				Tag:     excerpt(s, i+cls),
				Message: "cierre '}}' sin apertura '{{'",
			})
			i += cls + len(closeDelim)
			continue
		}
		if open == -1 {
			break
		}

		start := i + open
		body := start + len(openDelim)
		end := strings.Index(s[body:], closeDelim)
		if end == -1 {
			issues = append(issues, domain.TemplateIssue{
				Tag:     excerpt(s, start),
				Message: "tag sin cerrar: falta '}}'",
			})
			break
		}
		inner := s[body : body+end]
		if strings.Contains(inner, openDelim) {
			issues = append(issues, domain.TemplateIssue{
				Tag:     excerpt(s, start),
				Message: "tag anidado o duplicado: '{{' dentro de otro tag",
			})
			i = body + strings.Index(inner, openDelim)
			continue
		}
		name := strings.TrimSpace(inner)
		switch {
		case name == "":
			issues = append(issues, domain.TemplateIssue{Tag: openDelim + inner + closeDelim, Message: "tag vacío"})
		case !tagName.MatchString(name):
			issues = append(issues, domain.TemplateIssue{Tag: name, Message: "nombre de tag inválido"})
		default:
			tags = append(tags, tag{name: name, start: start, end: body + end + len(closeDelim)})
		}
		i = body + end + len(closeDelim)
	}
	return tags, issues
}

func excerpt(s string, pos int) string {
	end := pos + 30
	if end >= len(s) {
		return s[pos:]
	}
	for end > pos && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[pos:end]
}
