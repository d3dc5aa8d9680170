package repository

import (
	"context"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
)

// PropertyFilter filtros de listado de expedientes.
type PropertyFilter struct {
	Status    string // vacío = todos
	AdvisorID string // vacío = todos los asesores
	Limit     int
	Offset    int
}

// PropertyRepository define el puerto de persistencia para Property (DIP).
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	// GetByID devuelve (nil, nil) si no existe. Incluye el asesor.
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	// GetByIDForUpdate bloquea la fila dentro de la transacción en curso.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, filter PropertyFilter) ([]*entity.Property, int, error)
}
