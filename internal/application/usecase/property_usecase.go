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

// PropertyUseCase casos de uso del expediente de la propiedad.
type PropertyUseCase struct {
	repo  repository.PropertyRepository
	users repository.UserRepository
	log   *logger.Logger
	now   func() time.Time
}

// NewPropertyUseCase construye el caso de uso.
func NewPropertyUseCase(repo repository.PropertyRepository, users repository.UserRepository, log *logger.Logger) *PropertyUseCase {
	return &PropertyUseCase{repo: repo, users: users, log: log, now: time.Now}
}

// Create abre un expediente en preparación a nombre del asesor que lo crea.
func (uc *PropertyUseCase) Create(ctx context.Context, actor Actor, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: titulo es requerido", domain.ErrInvalidInput)
	}
	ownersJSON, err := encodeOwnerDTOs(in.Owners)
	if err != nil {
		return nil, err
	}
	advisor, err := uc.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if advisor == nil || advisor.Status != entity.UserStatusActive {
		return nil, fmt.Errorf("%w: usuario inexistente o inactivo", domain.ErrForbidden)
	}
	now := uc.now()
	p := &entity.Property{
		ID:           uuid.New().String(),
		Title:        title,
		PropertyType: strings.TrimSpace(in.PropertyType),
		Address:      strings.TrimSpace(in.Address),
		CadastralRef: strings.TrimSpace(in.CadastralRef),
		Locality:     strings.TrimSpace(in.Locality),
		OwnersJSON:   ownersJSON,
		AdvisorID:    actor.UserID,
		Status:       entity.PropertyStatusInPreparation,
		Description:  in.Description,
		Advisor:      &entity.Advisor{ID: advisor.ID, Name: advisor.Name, Email: advisor.Email},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("property_id", p.ID).Str("advisor_id", actor.UserID).Msg("expediente creado")
	return toPropertyResponse(p), nil
}

// GetByID obtiene un expediente visible para el actor.
func (uc *PropertyUseCase) GetByID(ctx context.Context, actor Actor, id string) (*dto.PropertyResponse, error) {
	p, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toPropertyResponse(p), nil
}

// CheckAccess verifica que el expediente exista y que el actor pueda verlo.
func (uc *PropertyUseCase) CheckAccess(ctx context.Context, actor Actor, id string) error {
	_, err := uc.load(ctx, actor, id)
	return err
}

// List lista expedientes. Un asesor solo ve los propios.
func (uc *PropertyUseCase) List(ctx context.Context, actor Actor, status string, limit, offset int) (*dto.PropertyListResponse, error) {
	filter := repository.PropertyFilter{Status: status, Limit: limit, Offset: offset}
	if !actor.IsAdmin() {
		filter.AdvisorID = actor.UserID
	}
	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PropertyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPropertyResponse(p))
	}
	return &dto.PropertyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Update edita un expediente mientras está en preparación o rechazado.
func (uc *PropertyUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	p, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !p.Editable() {
		return nil, fmt.Errorf("%w: el expediente está %s", domain.ErrInvalidTransition, p.Status)
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: titulo no puede quedar vacío", domain.ErrInvalidInput)
		}
		p.Title = title
	}
	if in.PropertyType != nil {
		p.PropertyType = strings.TrimSpace(*in.PropertyType)
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.CadastralRef != nil {
		p.CadastralRef = strings.TrimSpace(*in.CadastralRef)
	}
	if in.Locality != nil {
		p.Locality = strings.TrimSpace(*in.Locality)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Owners != nil {
		ownersJSON, err := encodeOwnerDTOs(*in.Owners)
		if err != nil {
			return nil, err
		}
		p.OwnersJSON = ownersJSON
	}
	p.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPropertyResponse(p), nil
}

// Submit envía el expediente a revisión del administrador.
func (uc *PropertyUseCase) Submit(ctx context.Context, actor Actor, id string) (*dto.PropertyResponse, error) {
	p, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !p.Editable() {
		return nil, fmt.Errorf("%w: no se puede enviar un expediente %s", domain.ErrInvalidTransition, p.Status)
	}
	if len(mandato.ParseOwners(p.OwnersJSON)) == 0 {
		return nil, fmt.Errorf("%w: el expediente necesita al menos un propietario", domain.ErrInvalidInput)
	}
	return uc.transition(ctx, p, entity.PropertyStatusPending)
}

// Approve aprueba un expediente pendiente. Solo admin.
func (uc *PropertyUseCase) Approve(ctx context.Context, actor Actor, id string) (*dto.PropertyResponse, error) {
	return uc.review(ctx, actor, id, entity.PropertyStatusApproved, "")
}

// Reject rechaza un expediente pendiente; el motivo queda en la descripción. Solo admin.
func (uc *PropertyUseCase) Reject(ctx context.Context, actor Actor, id, reason string) (*dto.PropertyResponse, error) {
	return uc.review(ctx, actor, id, entity.PropertyStatusRejected, strings.TrimSpace(reason))
}

func (uc *PropertyUseCase) review(ctx context.Context, actor Actor, id, status, reason string) (*dto.PropertyResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	p, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if p.Status != entity.PropertyStatusPending {
		return nil, fmt.Errorf("%w: el expediente está %s, debe estar pendiente", domain.ErrInvalidTransition, p.Status)
	}
	if reason != "" {
		note := "Motivo de rechazo: " + reason
		if p.Description != "" {
			note = p.Description + "\n" + note
		}
		p.Description = note
		p.Status = status
		p.UpdatedAt = uc.now()
		if err := uc.repo.Update(ctx, p); err != nil {
			return nil, err
		}
		uc.log.Info().Str("property_id", p.ID).Str("status", status).Msg("expediente revisado")
		return toPropertyResponse(p), nil
	}
	return uc.transition(ctx, p, status)
}

func (uc *PropertyUseCase) transition(ctx context.Context, p *entity.Property, status string) (*dto.PropertyResponse, error) {
	if err := uc.repo.UpdateStatus(ctx, p.ID, status); err != nil {
		return nil, err
	}
	uc.log.Info().Str("property_id", p.ID).Str("from", p.Status).Str("to", status).Msg("expediente cambia de estado")
	p.Status = status
	p.UpdatedAt = uc.now()
	return toPropertyResponse(p), nil
}

func (uc *PropertyUseCase) load(ctx context.Context, actor Actor, id string) (*entity.Property, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkAccess(actor, p); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeOwnerDTOs(in []dto.OwnerDTO) (*string, error) {
	if len(in) > entity.MaxOwners {
		return nil, fmt.Errorf("%w: máximo %d propietarios", domain.ErrInvalidInput, entity.MaxOwners)
	}
	owners := make([]entity.Owner, 0, len(in))
	for _, o := range in {
		owners = append(owners, entity.Owner{
			FullName:      strings.TrimSpace(o.NombreCompleto),
			DNI:           strings.TrimSpace(o.DNI),
			BirthDate:     strings.TrimSpace(o.FechaNacimiento),
			BirthPlace:    strings.TrimSpace(o.LugarNacimiento),
			Address:       strings.TrimSpace(o.Domicilio),
			Mobile:        strings.TrimSpace(o.Celular),
			TaxID:         strings.TrimSpace(o.Cuil),
			MaritalStatus: strings.TrimSpace(o.EstadoCivil),
			Email:         strings.TrimSpace(o.Email),
		})
	}
	return mandato.EncodeOwners(owners)
}

func toPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	if p == nil {
		return nil
	}
	owners := mandato.ParseOwners(p.OwnersJSON)
	out := &dto.PropertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		PropertyType: p.PropertyType,
		Address:      p.Address,
		CadastralRef: p.CadastralRef,
		Locality:     p.Locality,
		Description:  p.Description,
		Owners:       make([]dto.OwnerDTO, 0, len(owners)),
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	for _, o := range owners {
		out.Owners = append(out.Owners, dto.OwnerDTO{
			NombreCompleto:  o.FullName,
			DNI:             o.DNI,
			FechaNacimiento: o.BirthDate,
			LugarNacimiento: o.BirthPlace,
			Domicilio:       o.Address,
			Celular:         o.Mobile,
			Cuil:            o.TaxID,
			EstadoCivil:     o.MaritalStatus,
			Email:           o.Email,
		})
	}
	if p.Advisor != nil {
		out.Advisor = &dto.AdvisorDTO{ID: p.Advisor.ID, Nombre: p.Advisor.Name, Email: p.Advisor.Email}
	}
	return out
}
