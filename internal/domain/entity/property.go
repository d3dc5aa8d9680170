package entity

import "time"

// Estados del expediente de una propiedad.
const (
	PropertyStatusInPreparation = "en_preparacion"
	PropertyStatusPending       = "pendiente"
	PropertyStatusApproved      = "aprobado"
	PropertyStatusRejected      = "rechazado"
)

// MaxOwners es la cantidad máxima de propietarios por expediente.
const MaxOwners = 3

// Property representa el expediente de una propiedad en captación.
type Property struct {
	ID           string
	Title        string
	PropertyType string
	Address      string
	CadastralRef string // Partida inmobiliaria
	Locality     string
	OwnersJSON   *string // Lista de propietarios serializada (JSON), puede ser NULL
	AdvisorID    string
	Advisor      *Advisor // Se completa en las lecturas con JOIN a users
	Status       string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Editable indica si el asesor todavía puede modificar el expediente.
func (p *Property) Editable() bool {
	return p.Status == PropertyStatusInPreparation || p.Status == PropertyStatusRejected
}
