// Package repomock tiene mocks basados en funciones para los puertos de repository.
// Los métodos sin función configurada devuelven valores cero (Get* = no existe).
package repomock

import (
	"context"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/domain/repository"
)

var (
	_ repository.PropertyRepository = (*PropertyRepo)(nil)
	_ repository.MandateRepository  = (*MandateRepo)(nil)
	_ repository.UserRepository     = (*UserRepo)(nil)
)

// PropertyRepo mock de repository.PropertyRepository.
type PropertyRepo struct {
	CreateFn           func(ctx context.Context, p *entity.Property) error
	GetByIDFn          func(ctx context.Context, id string) (*entity.Property, error)
	GetByIDForUpdateFn func(ctx context.Context, id string) (*entity.Property, error)
	UpdateFn           func(ctx context.Context, p *entity.Property) error
	UpdateStatusFn     func(ctx context.Context, id, status string) error
	ListFn             func(ctx context.Context, f repository.PropertyFilter) ([]*entity.Property, int, error)
}

func (m *PropertyRepo) Create(ctx context.Context, p *entity.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

// GetByIDForUpdate cae en GetByIDFn si no hay función propia.
func (m *PropertyRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Property, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *PropertyRepo) Update(ctx context.Context, p *entity.Property) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}

func (m *PropertyRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *PropertyRepo) List(ctx context.Context, f repository.PropertyFilter) ([]*entity.Property, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

// MandateRepo mock de repository.MandateRepository.
type MandateRepo struct {
	CreateFn          func(ctx context.Context, m *entity.Mandate) error
	GetByPropertyIDFn func(ctx context.Context, propertyID string) (*entity.Mandate, error)
	UpdateFn          func(ctx context.Context, m *entity.Mandate) error
}

func (m *MandateRepo) Create(ctx context.Context, md *entity.Mandate) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, md)
	}
	return nil
}

func (m *MandateRepo) GetByPropertyID(ctx context.Context, propertyID string) (*entity.Mandate, error) {
	if m.GetByPropertyIDFn != nil {
		return m.GetByPropertyIDFn(ctx, propertyID)
	}
	return nil, nil
}

func (m *MandateRepo) Update(ctx context.Context, md *entity.Mandate) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, md)
	}
	return nil
}

// TxRunner ejecuta fn directamente con los repos configurados, sin transacción real.
type TxRunner struct {
	Properties repository.PropertyRepository
	Mandates   repository.MandateRepository
	Calls      int
}

func (t *TxRunner) RunMandate(ctx context.Context, fn func(
	propertyRepo repository.PropertyRepository,
	mandateRepo repository.MandateRepository,
) error) error {
	t.Calls++
	return fn(t.Properties, t.Mandates)
}

// UserRepo mock de repository.UserRepository.
type UserRepo struct {
	GetByIDFn func(ctx context.Context, id string) (*entity.User, error)
}

func (m *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}
