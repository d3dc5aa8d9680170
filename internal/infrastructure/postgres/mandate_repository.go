package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mandatos-api/internal/domain"
	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/domain/repository"
)

var _ repository.MandateRepository = (*MandateRepo)(nil)

// MandateRepo implementación del puerto MandateRepository sobre PostgreSQL.
type MandateRepo struct {
	db DBTX
}

// NewMandateRepository construye el adaptador de persistencia para mandatos.
func NewMandateRepository(db DBTX) *MandateRepo {
	return &MandateRepo{db: db}
}

// Create persiste un mandato. La restricción única sobre property_id se
// traduce a domain.ErrConflict.
func (r *MandateRepo) Create(ctx context.Context, m *entity.Mandate) error {
	query := `
		INSERT INTO mandates (id, property_id, term_days, amount, currency, notes, status,
			signed_by, signed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.PropertyID, m.TermDays, m.Amount, m.Currency, nullIfEmpty(m.Notes), m.Status,
		nullIfEmpty(m.SignedBy), m.SignedAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert mandate: %w", err)
	}
	return nil
}

// GetByPropertyID obtiene el mandato de una propiedad. (nil, nil) si no tiene.
func (r *MandateRepo) GetByPropertyID(ctx context.Context, propertyID string) (*entity.Mandate, error) {
	query := `
		SELECT id, property_id, term_days, amount, currency, notes, status,
			signed_by, signed_at, created_at, updated_at
		FROM mandates WHERE property_id = $1`
	var m entity.Mandate
	var notes, signedBy *string
	err := r.db.QueryRow(ctx, query, propertyID).Scan(
		&m.ID, &m.PropertyID, &m.TermDays, &m.Amount, &m.Currency, &notes, &m.Status,
		&signedBy, &m.SignedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mandate: %w", err)
	}
	m.Notes = deref(notes)
	m.SignedBy = deref(signedBy)
	return &m, nil
}

// Update persiste estado, firma y observaciones del mandato.
func (r *MandateRepo) Update(ctx context.Context, m *entity.Mandate) error {
	query := `
		UPDATE mandates SET term_days = $2, amount = $3, currency = $4, notes = $5, status = $6,
			signed_by = $7, signed_at = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		m.ID, m.TermDays, m.Amount, m.Currency, nullIfEmpty(m.Notes), m.Status,
		nullIfEmpty(m.SignedBy), m.SignedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update mandate: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update mandate %s: %w", m.ID, pgx.ErrNoRows)
	}
	return nil
}
