package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrMandateNotFound   = errors.New("la propiedad no tiene mandato")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrPrecondition      = errors.New("el estado actual no permite la operación")
	ErrInvalidTransition = errors.New("transición de estado inválida")
)

// TemplateMissingError indica que la plantilla .docx no existe en el servidor.
// Es un error de despliegue: el cliente no puede corregirlo.
type TemplateMissingError struct {
	Path string
}

func (e *TemplateMissingError) Error() string {
	return fmt.Sprintf("plantilla de mandato no encontrada: %s", e.Path)
}

// TemplateIssue describe un tag mal formado dentro de la plantilla.
type TemplateIssue struct {
	Part    string // parte del paquete OOXML (ej. word/document.xml)
	Tag     string
	Message string
}

// TemplateRenderError agrupa todos los errores de sintaxis encontrados al
// renderizar la plantilla, para corregirlos en una sola pasada.
type TemplateRenderError struct {
	Issues []TemplateIssue
}

func (e *TemplateRenderError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		msgs = append(msgs, fmt.Sprintf("%s [%s]: %s", is.Part, is.Tag, is.Message))
	}
	return fmt.Sprintf("plantilla con %d error(es): %s", len(e.Issues), strings.Join(msgs, "; "))
}
