package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

var _ repository.TurnoRepository = (*TurnoRepo)(nil)

// TurnoRepo implementación de TurnoRepository sobre PostgreSQL.
type TurnoRepo struct {
	q Querier
}

// NewTurnoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTurnoRepository(q Querier) *TurnoRepo {
	return &TurnoRepo{q: q}
}

const turnoColumns = `id, user_id, paciente_id, fecha, duracion_minutos, motivo, estado, recordatorio_fecha, notas, created_at, updated_at`

// Create persiste un nuevo turno.
func (r *TurnoRepo) Create(t *entity.Turno) error {
	query := `
		INSERT INTO turnos (` + turnoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.UserID, t.PacienteID, t.Fecha, t.DuracionMinutos, t.Motivo,
		t.Estado, t.RecordatorioFecha, t.Notas, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert turno: %w", err)
	}
	return nil
}

// GetByID obtiene un turno del usuario.
func (r *TurnoRepo) GetByID(userID, id string) (*entity.Turno, error) {
	query := `SELECT ` + turnoColumns + ` FROM turnos WHERE user_id = $1 AND id = $2`
	t, err := scanTurno(r.q.QueryRow(context.Background(), query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get turno: %w", err)
	}
	return t, nil
}

// ListByUser lista los turnos del usuario, más recientes primero.
func (r *TurnoRepo) ListByUser(userID string, limit, offset int) ([]*entity.Turno, error) {
	query := `
		SELECT ` + turnoColumns + `
		FROM turnos WHERE user_id = $1
		ORDER BY fecha DESC
		LIMIT $2 OFFSET $3`
	return r.queryTurnos(query, userID, limit, offset)
}

// ListProximos devuelve los turnos con fecha >= desde en orden ascendente.
func (r *TurnoRepo) ListProximos(userID string, desde time.Time, limit int) ([]*entity.Turno, error) {
	query := `
		SELECT ` + turnoColumns + `
		FROM turnos WHERE user_id = $1 AND fecha >= $2
		ORDER BY fecha
		LIMIT $3`
	return r.queryTurnos(query, userID, desde, limit)
}

// Update actualiza los campos editables del turno.
func (r *TurnoRepo) Update(t *entity.Turno) error {
	query := `
		UPDATE turnos
		SET fecha = $3, duracion_minutos = $4, motivo = $5, estado = $6,
		    recordatorio_fecha = $7, notas = $8, updated_at = $9
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		t.UserID, t.ID, t.Fecha, t.DuracionMinutos, t.Motivo, t.Estado,
		t.RecordatorioFecha, t.Notas, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update turno: %w", err)
	}
	return nil
}

// Delete elimina un turno del usuario.
func (r *TurnoRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM turnos WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete turno: %w", err)
	}
	return nil
}

func (r *TurnoRepo) queryTurnos(query string, args ...any) ([]*entity.Turno, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list turnos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Turno
	for rows.Next() {
		t, err := scanTurno(rows)
		if err != nil {
			return nil, fmt.Errorf("scan turno: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTurno(row pgx.Row) (*entity.Turno, error) {
	var t entity.Turno
	err := row.Scan(
		&t.ID, &t.UserID, &t.PacienteID, &t.Fecha, &t.DuracionMinutos, &t.Motivo,
		&t.Estado, &t.RecordatorioFecha, &t.Notas, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
