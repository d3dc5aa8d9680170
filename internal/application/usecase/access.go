package usecase

import (
	"github.com/jhoicas/Mandatos-api/internal/domain"
	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
)

// Actor es el usuario autenticado que ejecuta el caso de uso (sale del JWT).
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin indica si el actor tiene rol administrador.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// checkAccess: el admin ve todo, el asesor solo sus expedientes.
func checkAccess(actor Actor, p *entity.Property) error {
	if actor.IsAdmin() || p.AdvisorID == actor.UserID {
		return nil
	}
	return domain.ErrForbidden
}
