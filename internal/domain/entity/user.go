package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleAsesor = "asesor"
)

// Estados de User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario de la inmobiliaria (administrador o asesor).
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string // admin, asesor
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Advisor es la vista reducida del asesor que se muestra en los documentos.
type Advisor struct {
	ID    string
	Name  string
	Email string
}
