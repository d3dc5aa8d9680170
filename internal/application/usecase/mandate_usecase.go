package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mandatos-api/internal/application/dto"
	"github.com/jhoicas/Mandatos-api/internal/domain"
	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/domain/mandato"
	"github.com/jhoicas/Mandatos-api/internal/domain/repository"
	"github.com/jhoicas/Mandatos-api/pkg/logger"
)

// MandateTxRunner ejecuta fn dentro de una transacción con repos atados a ella.
type MandateTxRunner interface {
	RunMandate(ctx context.Context, fn func(
		propertyRepo repository.PropertyRepository,
		mandateRepo repository.MandateRepository,
	) error) error
}

// MandateUseCase casos de uso del mandato de venta.
type MandateUseCase struct {
	tx           MandateTxRunner
	propertyRepo repository.PropertyRepository
	mandateRepo  repository.MandateRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewMandateUseCase construye el caso de uso.
func NewMandateUseCase(
	tx MandateTxRunner,
	propertyRepo repository.PropertyRepository,
	mandateRepo repository.MandateRepository,
	log *logger.Logger,
) *MandateUseCase {
	return &MandateUseCase{
		tx:           tx,
		propertyRepo: propertyRepo,
		mandateRepo:  mandateRepo,
		log:          log,
		now:          time.Now,
	}
}

// Create crea el mandato de una propiedad aprobada.
//
// Todo ocurre en una transacción con la fila del expediente bloqueada, así dos
// pedidos simultáneos no pueden crear dos mandatos.
func (uc *MandateUseCase) Create(ctx context.Context, actor Actor, propertyID string, in dto.CreateMandateRequest) (*dto.MandateResponse, error) {
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	switch {
	case in.TermDays <= 0:
		return nil, fmt.Errorf("%w: plazoDias debe ser mayor a 0", domain.ErrInvalidInput)
	case in.Amount.IsNegative():
		return nil, fmt.Errorf("%w: monto no puede ser negativo", domain.ErrInvalidInput)
	case !entity.ValidCurrency(currency):
		return nil, fmt.Errorf("%w: moneda debe ser ARS o USD", domain.ErrInvalidInput)
	}

	var created *entity.Mandate
	err := uc.tx.RunMandate(ctx, func(propertyRepo repository.PropertyRepository, mandateRepo repository.MandateRepository) error {
		p, err := propertyRepo.GetByIDForUpdate(ctx, propertyID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := checkAccess(actor, p); err != nil {
			return err
		}
		if p.Status != entity.PropertyStatusApproved {
			return fmt.Errorf("%w: la propiedad está %s, debe estar aprobada", domain.ErrPrecondition, p.Status)
		}
		existing, err := mandateRepo.GetByPropertyID(ctx, propertyID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: la propiedad ya tiene mandato", domain.ErrConflict)
		}
		now := uc.now()
		m := &entity.Mandate{
			ID:         uuid.New().String(),
			PropertyID: propertyID,
			TermDays:   in.TermDays,
			Amount:     in.Amount.Round(2),
			Currency:   currency,
			Notes:      strings.TrimSpace(in.Notes),
			Status:     entity.MandateStatusDraft,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := mandateRepo.Create(ctx, m); err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("property_id", propertyID).Str("mandate_id", created.ID).Msg("mandato creado")
	return toMandateResponse(created), nil
}

// GetByProperty obtiene el mandato de la propiedad.
func (uc *MandateUseCase) GetByProperty(ctx context.Context, actor Actor, propertyID string) (*dto.MandateResponse, error) {
	m, err := uc.load(ctx, actor, propertyID)
	if err != nil {
		return nil, err
	}
	return toMandateResponse(m), nil
}

// Send marca el mandato como enviado al propietario.
func (uc *MandateUseCase) Send(ctx context.Context, actor Actor, propertyID string) (*dto.MandateResponse, error) {
	m, err := uc.load(ctx, actor, propertyID)
	if err != nil {
		return nil, err
	}
	if m.Status != entity.MandateStatusDraft {
		return nil, fmt.Errorf("%w: solo se envía un mandato en borrador (está %s)", domain.ErrInvalidTransition, m.Status)
	}
	m.Status = entity.MandateStatusSent
	return uc.save(ctx, m)
}

// Sign registra la firma del mandato enviado. Sin fecha se usa la actual.
func (uc *MandateUseCase) Sign(ctx context.Context, actor Actor, propertyID string, in dto.SignMandateRequest) (*dto.MandateResponse, error) {
	signedBy := strings.TrimSpace(in.SignedBy)
	if signedBy == "" {
		return nil, fmt.Errorf("%w: firmadoPor es requerido", domain.ErrInvalidInput)
	}
	m, err := uc.load(ctx, actor, propertyID)
	if err != nil {
		return nil, err
	}
	if m.Status != entity.MandateStatusSent {
		return nil, fmt.Errorf("%w: solo se firma un mandato enviado (está %s)", domain.ErrInvalidTransition, m.Status)
	}
	signedAt := uc.now()
	if in.SignedAt != nil {
		signedAt = *in.SignedAt
	}
	m.Status = entity.MandateStatusSigned
	m.SignedBy = signedBy
	m.SignedAt = &signedAt
	return uc.save(ctx, m)
}

// Void anula el mandato. Solo admin.
func (uc *MandateUseCase) Void(ctx context.Context, actor Actor, propertyID string) (*dto.MandateResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	m, err := uc.load(ctx, actor, propertyID)
	if err != nil {
		return nil, err
	}
	if m.Status == entity.MandateStatusVoid {
		return nil, fmt.Errorf("%w: el mandato ya está anulado", domain.ErrInvalidTransition)
	}
	m.Status = entity.MandateStatusVoid
	return uc.save(ctx, m)
}

func (uc *MandateUseCase) save(ctx context.Context, m *entity.Mandate) (*dto.MandateResponse, error) {
	m.UpdatedAt = uc.now()
	if err := uc.mandateRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	uc.log.Info().Str("mandate_id", m.ID).Str("status", m.Status).Msg("mandato actualizado")
	return toMandateResponse(m), nil
}

func (uc *MandateUseCase) load(ctx context.Context, actor Actor, propertyID string) (*entity.Mandate, error) {
	p, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkAccess(actor, p); err != nil {
		return nil, err
	}
	m, err := uc.mandateRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMandateNotFound
	}
	return m, nil
}

func toMandateResponse(m *entity.Mandate) *dto.MandateResponse {
	if m == nil {
		return nil
	}
	return &dto.MandateResponse{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		TermDays:   m.TermDays,
		TermText:   mandato.PhraseTerm(m.TermDays).Smart,
		Amount:     m.Amount,
		Currency:   m.Currency,
		AmountText: mandato.FormatAmount(m.Amount, m.Currency).Legal,
		Notes:      m.Notes,
		Status:     m.Status,
		SignedBy:   m.SignedBy,
		SignedAt:   m.SignedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
