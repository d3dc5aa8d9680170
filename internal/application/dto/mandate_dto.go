package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMandateRequest entrada para crear el mandato de una propiedad aprobada.
type CreateMandateRequest struct {
	TermDays int             `json:"plazoDias" validate:"required,gt=0"`
	Amount   decimal.Decimal `json:"monto" validate:"required"`
	Currency string          `json:"moneda" validate:"required,oneof=ARS USD"`
	Notes    string          `json:"observaciones"`
}

// SignMandateRequest datos de la firma. Si SignedAt es nil se usa la fecha actual.
type SignMandateRequest struct {
	SignedBy string     `json:"firmadoPor" validate:"required"`
	SignedAt *time.Time `json:"fechaFirma"`
}

// MandateResponse salida de un mandato.
type MandateResponse struct {
	ID         string          `json:"id"`
	PropertyID string          `json:"propertyId"`
	TermDays   int             `json:"plazoDias"`
	TermText   string          `json:"plazoTexto"`
	Amount     decimal.Decimal `json:"monto"`
	Currency   string          `json:"moneda"`
	AmountText string          `json:"montoLegal"`
	Notes      string          `json:"observaciones,omitempty"`
	Status     string          `json:"estado"`
	SignedBy   string          `json:"firmadoPor,omitempty"`
	SignedAt   *time.Time      `json:"fechaFirma,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
