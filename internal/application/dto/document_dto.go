package dto

// DocumentErrorResponse cuerpo de error de la generación de documentos.
// Error y Detalles son legibles; Errores lista cada tag mal formado de la plantilla.
type DocumentErrorResponse struct {
	Code     string             `json:"code"`
	Error    string             `json:"error"`
	Detalles string             `json:"detalles,omitempty"`
	Errores  []TemplateIssueDTO `json:"errores,omitempty"`
}

// TemplateIssueDTO un error puntual de la plantilla.
type TemplateIssueDTO struct {
	Parte   string `json:"parte"`
	Tag     string `json:"tag"`
	Mensaje string `json:"mensaje"`
}
