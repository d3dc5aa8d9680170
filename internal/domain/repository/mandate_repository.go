package repository

import (
	"context"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
)

// MandateRepository define el puerto de persistencia para Mandate.
type MandateRepository interface {
	Create(ctx context.Context, mandate *entity.Mandate) error
	// GetByPropertyID devuelve (nil, nil) si la propiedad no tiene mandato.
	GetByPropertyID(ctx context.Context, propertyID string) (*entity.Mandate, error)
	Update(ctx context.Context, mandate *entity.Mandate) error
}
