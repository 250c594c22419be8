package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

var _ repository.PacienteRepository = (*PacienteRepo)(nil)

// PacienteRepo implementación de PacienteRepository sobre PostgreSQL.
// Todas las consultas filtran por user_id: un paciente de otro usuario no
// existe para el caller.
type PacienteRepo struct {
	q Querier
}

// NewPacienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPacienteRepository(q Querier) *PacienteRepo {
	return &PacienteRepo{q: q}
}

// Create persiste un nuevo paciente.
func (r *PacienteRepo) Create(p *entity.Paciente) error {
	query := `
		INSERT INTO pacientes (id, user_id, nombre, apellido, dni, email, telefono, tipo_atencion, centro_salud_id, obra_social_id, numero_afiliado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UserID, p.Nombre, p.Apellido, p.DNI, p.Email, p.Telefono,
		p.TipoAtencion, nullIfEmpty(p.CentroSaludID), nullIfEmpty(p.ObraSocialID),
		p.NumeroAfiliado, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paciente: %w", err)
	}
	return nil
}

// GetByID obtiene un paciente del usuario.
func (r *PacienteRepo) GetByID(userID, id string) (*entity.Paciente, error) {
	query := `
		SELECT id, user_id, nombre, apellido, dni, email, telefono, tipo_atencion, centro_salud_id, obra_social_id, numero_afiliado, created_at, updated_at
		FROM pacientes WHERE user_id = $1 AND id = $2`
	p, err := scanPaciente(r.q.QueryRow(context.Background(), query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paciente: %w", err)
	}
	return p, nil
}

// ListByUser lista los pacientes del usuario ordenados por apellido.
func (r *PacienteRepo) ListByUser(userID string, limit, offset int) ([]*entity.Paciente, error) {
	query := `
		SELECT id, user_id, nombre, apellido, dni, email, telefono, tipo_atencion, centro_salud_id, obra_social_id, numero_afiliado, created_at, updated_at
		FROM pacientes WHERE user_id = $1
		ORDER BY apellido, nombre
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pacientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Paciente
	for rows.Next() {
		p, err := scanPaciente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paciente: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables del paciente.
func (r *PacienteRepo) Update(p *entity.Paciente) error {
	query := `
		UPDATE pacientes
		SET nombre = $3, apellido = $4, dni = $5, email = $6, telefono = $7,
		    tipo_atencion = $8, centro_salud_id = $9, obra_social_id = $10,
		    numero_afiliado = $11, updated_at = $12
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		p.UserID, p.ID, p.Nombre, p.Apellido, p.DNI, p.Email, p.Telefono,
		p.TipoAtencion, nullIfEmpty(p.CentroSaludID), nullIfEmpty(p.ObraSocialID),
		p.NumeroAfiliado, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update paciente: %w", err)
	}
	return nil
}

// Delete elimina un paciente del usuario.
func (r *PacienteRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM pacientes WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete paciente: %w", err)
	}
	return nil
}

func scanPaciente(row pgx.Row) (*entity.Paciente, error) {
	var p entity.Paciente
	var centro, obra *string
	err := row.Scan(
		&p.ID, &p.UserID, &p.Nombre, &p.Apellido, &p.DNI, &p.Email, &p.Telefono,
		&p.TipoAtencion, &centro, &obra, &p.NumeroAfiliado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CentroSaludID = derefStr(centro)
	p.ObraSocialID = derefStr(obra)
	return &p, nil
}
