package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

var _ repository.ObraSocialRepository = (*ObraSocialRepo)(nil)

// ObraSocialRepo implementación de ObraSocialRepository sobre PostgreSQL.
type ObraSocialRepo struct {
	q Querier
}

// NewObraSocialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewObraSocialRepository(q Querier) *ObraSocialRepo {
	return &ObraSocialRepo{q: q}
}

// Create persiste una nueva obra social.
func (r *ObraSocialRepo) Create(o *entity.ObraSocial) error {
	query := `
		INSERT INTO obras_sociales (id, user_id, nombre, cuit, email, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.UserID, o.Nombre, o.CUIT, o.Email, o.Telefono, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert obra social: %w", err)
	}
	return nil
}

// GetByID obtiene una obra social del usuario.
func (r *ObraSocialRepo) GetByID(userID, id string) (*entity.ObraSocial, error) {
	query := `
		SELECT id, user_id, nombre, cuit, email, telefono, created_at, updated_at
		FROM obras_sociales WHERE user_id = $1 AND id = $2`
	var o entity.ObraSocial
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&o.ID, &o.UserID, &o.Nombre, &o.CUIT, &o.Email, &o.Telefono, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obra social: %w", err)
	}
	return &o, nil
}

// ListByUser lista las obras sociales del usuario ordenadas por nombre.
func (r *ObraSocialRepo) ListByUser(userID string, limit, offset int) ([]*entity.ObraSocial, error) {
	query := `
		SELECT id, user_id, nombre, cuit, email, telefono, created_at, updated_at
		FROM obras_sociales WHERE user_id = $1
		ORDER BY nombre
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list obras sociales: %w", err)
	}
	defer rows.Close()
	var list []*entity.ObraSocial
	for rows.Next() {
		var o entity.ObraSocial
		if err := rows.Scan(&o.ID, &o.UserID, &o.Nombre, &o.CUIT, &o.Email, &o.Telefono, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan obra social: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de la obra social.
func (r *ObraSocialRepo) Update(o *entity.ObraSocial) error {
	query := `
		UPDATE obras_sociales
		SET nombre = $3, cuit = $4, email = $5, telefono = $6, updated_at = $7
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		o.UserID, o.ID, o.Nombre, o.CUIT, o.Email, o.Telefono, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update obra social: %w", err)
	}
	return nil
}

// Delete elimina una obra social del usuario.
func (r *ObraSocialRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM obras_sociales WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete obra social: %w", err)
	}
	return nil
}
