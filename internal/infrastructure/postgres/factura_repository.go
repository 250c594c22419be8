package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository sobre PostgreSQL (usable
// con pool o tx). Las lecturas devuelven la factura con sus pagos embebidos
// en orden de registro.
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaColumns = `id, user_id, paciente_id, obra_social_id, centro_salud_id, numero_factura, monto_total, fecha_emision, fecha_vencimiento, estado, pagado, observaciones, created_at, updated_at`

// Create persiste la cabecera de la factura. El número es único por usuario.
func (r *FacturaRepo) Create(f *entity.Factura) error {
	query := `
		INSERT INTO facturas (` + facturaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.UserID, f.PacienteID, nullIfEmpty(f.ObraSocialID), nullIfEmpty(f.CentroSaludID),
		f.NumeroFactura, f.MontoTotal, f.FechaEmision, nullIfZeroTime(f.FechaVencimiento),
		f.Estado, f.Pagado, f.Observaciones, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNumeroDuplicado
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura del usuario con sus pagos.
func (r *FacturaRepo) GetByID(userID, id string) (*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas WHERE user_id = $1 AND id = $2`
	f, err := scanFactura(r.q.QueryRow(context.Background(), query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	if err := r.cargarPagos([]*entity.Factura{f}); err != nil {
		return nil, err
	}
	return f, nil
}

// ListByUser lista las facturas del usuario con filtros opcionales, más
// recientes primero, con sus pagos embebidos.
func (r *FacturaRepo) ListByUser(userID string, filtro repository.FacturaFiltro, limit, offset int) ([]*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas WHERE user_id = $1`
	args := []any{userID}
	if filtro.PacienteID != "" {
		args = append(args, filtro.PacienteID)
		query += ` AND paciente_id = $` + strconv.Itoa(len(args))
	}
	if filtro.Estado != "" {
		args = append(args, filtro.Estado)
		query += ` AND estado = $` + strconv.Itoa(len(args))
	}
	args = append(args, limit, offset)
	query += ` ORDER BY fecha_emision DESC, numero_factura DESC LIMIT $` +
		strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factura
	for rows.Next() {
		f, err := scanFactura(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.cargarPagos(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update actualiza la cabecera de la factura (incluye estado y pagado).
func (r *FacturaRepo) Update(f *entity.Factura) error {
	query := `
		UPDATE facturas
		SET paciente_id = $3, obra_social_id = $4, centro_salud_id = $5,
		    numero_factura = $6, monto_total = $7, fecha_emision = $8,
		    fecha_vencimiento = $9, estado = $10, pagado = $11,
		    observaciones = $12, updated_at = $13
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		f.UserID, f.ID, f.PacienteID, nullIfEmpty(f.ObraSocialID), nullIfEmpty(f.CentroSaludID),
		f.NumeroFactura, f.MontoTotal, f.FechaEmision, nullIfZeroTime(f.FechaVencimiento),
		f.Estado, f.Pagado, f.Observaciones, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNumeroDuplicado
		}
		return fmt.Errorf("update factura: %w", err)
	}
	return nil
}

// Delete elimina la factura; los pagos caen por ON DELETE CASCADE.
func (r *FacturaRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM facturas WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}

// CreatePago persiste un pago del ledger.
func (r *FacturaRepo) CreatePago(p *entity.Pago) error {
	query := `
		INSERT INTO pagos (id, factura_id, monto, fecha, metodo, nota, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.FacturaID, p.Monto, p.Fecha, p.Metodo, p.Nota, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// DeletePago elimina un pago; devuelve false si no pertenece a la factura.
func (r *FacturaRepo) DeletePago(facturaID, pagoID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM pagos WHERE factura_id = $1 AND id = $2`, facturaID, pagoID)
	if err != nil {
		return false, fmt.Errorf("delete pago: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// cargarPagos carga en una sola consulta los pagos de todas las facturas,
// en orden de registro.
func (r *FacturaRepo) cargarPagos(facturas []*entity.Factura) error {
	if len(facturas) == 0 {
		return nil
	}
	porID := make(map[string]*entity.Factura, len(facturas))
	ids := make([]string, 0, len(facturas))
	for _, f := range facturas {
		f.Pagos = []entity.Pago{}
		porID[f.ID] = f
		ids = append(ids, f.ID)
	}

	query := `
		SELECT id, factura_id, monto, fecha, metodo, nota, created_at
		FROM pagos WHERE factura_id = ANY($1)
		ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(&p.ID, &p.FacturaID, &p.Monto, &p.Fecha, &p.Metodo, &p.Nota, &p.CreatedAt); err != nil {
			return fmt.Errorf("scan pago: %w", err)
		}
		if f, ok := porID[p.FacturaID]; ok {
			f.Pagos = append(f.Pagos, p)
		}
	}
	return rows.Err()
}

func scanFactura(row pgx.Row) (*entity.Factura, error) {
	var f entity.Factura
	var obra, centro *string
	var vencimiento *time.Time
	err := row.Scan(
		&f.ID, &f.UserID, &f.PacienteID, &obra, &centro, &f.NumeroFactura,
		&f.MontoTotal, &f.FechaEmision, &vencimiento, &f.Estado, &f.Pagado,
		&f.Observaciones, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.ObraSocialID = derefStr(obra)
	f.CentroSaludID = derefStr(centro)
	if vencimiento != nil {
		f.FechaVencimiento = *vencimiento
	}
	return &f, nil
}

func nullIfZeroTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
