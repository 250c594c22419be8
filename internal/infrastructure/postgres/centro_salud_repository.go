package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

var _ repository.CentroSaludRepository = (*CentroSaludRepo)(nil)

// CentroSaludRepo implementación de CentroSaludRepository sobre PostgreSQL.
type CentroSaludRepo struct {
	q Querier
}

// NewCentroSaludRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCentroSaludRepository(q Querier) *CentroSaludRepo {
	return &CentroSaludRepo{q: q}
}

// Create persiste un nuevo centro de salud. La unicidad del nombre por
// usuario la respalda un índice único sobre (user_id, LOWER(nombre)).
func (r *CentroSaludRepo) Create(c *entity.CentroSalud) error {
	query := `
		INSERT INTO centros_salud (id, user_id, nombre, retencion_porcentaje, direccion, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.UserID, c.Nombre, c.RetencionPorcentaje, c.Direccion, c.Telefono,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCentroDuplicado
		}
		return fmt.Errorf("insert centro de salud: %w", err)
	}
	return nil
}

// GetByID obtiene un centro del usuario.
func (r *CentroSaludRepo) GetByID(userID, id string) (*entity.CentroSalud, error) {
	query := `
		SELECT id, user_id, nombre, retencion_porcentaje, direccion, telefono, created_at, updated_at
		FROM centros_salud WHERE user_id = $1 AND id = $2`
	var c entity.CentroSalud
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&c.ID, &c.UserID, &c.Nombre, &c.RetencionPorcentaje, &c.Direccion, &c.Telefono,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get centro de salud: %w", err)
	}
	return &c, nil
}

// GetByUserAndNombre busca por nombre sin distinguir mayúsculas.
func (r *CentroSaludRepo) GetByUserAndNombre(userID, nombre string) (*entity.CentroSalud, error) {
	query := `
		SELECT id, user_id, nombre, retencion_porcentaje, direccion, telefono, created_at, updated_at
		FROM centros_salud WHERE user_id = $1 AND LOWER(nombre) = LOWER($2)`
	var c entity.CentroSalud
	err := r.q.QueryRow(context.Background(), query, userID, nombre).Scan(
		&c.ID, &c.UserID, &c.Nombre, &c.RetencionPorcentaje, &c.Direccion, &c.Telefono,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get centro por nombre: %w", err)
	}
	return &c, nil
}

// ListByUser lista los centros del usuario ordenados por nombre.
func (r *CentroSaludRepo) ListByUser(userID string, limit, offset int) ([]*entity.CentroSalud, error) {
	query := `
		SELECT id, user_id, nombre, retencion_porcentaje, direccion, telefono, created_at, updated_at
		FROM centros_salud WHERE user_id = $1
		ORDER BY nombre
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list centros de salud: %w", err)
	}
	defer rows.Close()
	var list []*entity.CentroSalud
	for rows.Next() {
		var c entity.CentroSalud
		if err := rows.Scan(&c.ID, &c.UserID, &c.Nombre, &c.RetencionPorcentaje, &c.Direccion, &c.Telefono, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan centro de salud: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables del centro.
func (r *CentroSaludRepo) Update(c *entity.CentroSalud) error {
	query := `
		UPDATE centros_salud
		SET nombre = $3, retencion_porcentaje = $4, direccion = $5, telefono = $6, updated_at = $7
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		c.UserID, c.ID, c.Nombre, c.RetencionPorcentaje, c.Direccion, c.Telefono, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCentroDuplicado
		}
		return fmt.Errorf("update centro de salud: %w", err)
	}
	return nil
}

// Delete elimina un centro del usuario.
func (r *CentroSaludRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM centros_salud WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete centro de salud: %w", err)
	}
	return nil
}
