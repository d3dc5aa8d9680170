package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del mandato de venta.
const (
	MandateStatusDraft  = "borrador"
	MandateStatusSent   = "enviado"
	MandateStatusSigned = "firmado"
	MandateStatusVoid   = "anulado"
)

// Monedas admitidas.
const (
	CurrencyARS = "ARS"
	CurrencyUSD = "USD"
)

// Mandate es el mandato de venta, 1:1 con una propiedad aprobada.
type Mandate struct {
	ID         string
	PropertyID string
	TermDays   int
	Amount     decimal.Decimal
	Currency   string
	Notes      string
	Status     string
	SignedBy   string
	SignedAt   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsSigned indica si el mandato ya fue firmado.
func (m *Mandate) IsSigned() bool {
	return m.Status == MandateStatusSigned
}

// ValidCurrency devuelve true para ARS o USD.
func ValidCurrency(c string) bool {
	return c == CurrencyARS || c == CurrencyUSD
}
