package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implementación del puerto PropertyRepository sobre PostgreSQL.
type PropertyRepo struct {
	db DBTX
}

// NewPropertyRepository construye el adaptador de persistencia para expedientes.
func NewPropertyRepository(db DBTX) *PropertyRepo {
	return &PropertyRepo{db: db}
}

const propertyColumns = `
	p.id, p.title, p.property_type, p.address, p.cadastral_ref, p.locality,
	p.owners_json, p.advisor_id, p.status, p.description, p.created_at, p.updated_at,
	u.name, u.email`

const propertyFrom = `
	FROM properties p
	LEFT JOIN users u ON u.id = p.advisor_id`

// Create persiste un nuevo expediente.
func (r *PropertyRepo) Create(ctx context.Context, p *entity.Property) error {
	query := `
		INSERT INTO properties (id, title, property_type, address, cadastral_ref, locality,
			owners_json, advisor_id, status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.PropertyType, p.Address, p.CadastralRef, p.Locality,
		p.OwnersJSON, p.AdvisorID, p.Status, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

// GetByID obtiene un expediente con su asesor. (nil, nil) si no existe.
func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	return r.get(ctx, `SELECT`+propertyColumns+propertyFrom+` WHERE p.id = $1`, id)
}

// GetByIDForUpdate igual que GetByID pero bloquea la fila del expediente.
func (r *PropertyRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Property, error) {
	return r.get(ctx, `SELECT`+propertyColumns+propertyFrom+` WHERE p.id = $1 FOR UPDATE OF p`, id)
}

func (r *PropertyRepo) get(ctx context.Context, query, id string) (*entity.Property, error) {
	p, err := scanProperty(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// Update actualiza los datos editables del expediente.
func (r *PropertyRepo) Update(ctx context.Context, p *entity.Property) error {
	query := `
		UPDATE properties SET title = $2, property_type = $3, address = $4, cadastral_ref = $5,
			locality = $6, owners_json = $7, description = $8, status = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.PropertyType, p.Address, p.CadastralRef,
		p.Locality, p.OwnersJSON, p.Description, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update property %s: %w", p.ID, pgx.ErrNoRows)
	}
	return nil
}

// UpdateStatus cambia solo el estado del expediente.
func (r *PropertyRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE properties SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update property status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update property status %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

// List lista expedientes con filtros opcionales y devuelve también el total.
func (r *PropertyRepo) List(ctx context.Context, f repository.PropertyFilter) ([]*entity.Property, int, error) {
	var where []string
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if f.AdvisorID != "" {
		args = append(args, f.AdvisorID)
		where = append(where, fmt.Sprintf("p.advisor_id = $%d", len(args)))
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM properties p`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := `SELECT` + propertyColumns + propertyFrom + cond +
		fmt.Sprintf(` ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan property: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

func scanProperty(row pgx.Row) (*entity.Property, error) {
	var p entity.Property
	var advisorName, advisorEmail, description *string
	err := row.Scan(
		&p.ID, &p.Title, &p.PropertyType, &p.Address, &p.CadastralRef, &p.Locality,
		&p.OwnersJSON, &p.AdvisorID, &p.Status, &description, &p.CreatedAt, &p.UpdatedAt,
		&advisorName, &advisorEmail,
	)
	if err != nil {
		return nil, err
	}
	p.Description = deref(description)
	if advisorName != nil || advisorEmail != nil {
		p.Advisor = &entity.Advisor{ID: p.AdvisorID, Name: deref(advisorName), Email: deref(advisorEmail)}
	}
	return &p, nil
}
