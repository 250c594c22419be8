package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas read-only de agregación de saldos. El saldo por
// factura se calcula en SQL con la misma fórmula que el dominio:
// GREATEST(monto_total - COALESCE(SUM(pagos), 0), 0).
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// columnaDimension mapea la dimensión a su columna. Whitelist: la dimensión
// nunca se interpola directo de la entrada del usuario.
func columnaDimension(dimension string) (string, error) {
	switch dimension {
	case repository.DimensionObraSocial:
		return "f.obra_social_id", nil
	case repository.DimensionCentro:
		return "f.centro_salud_id", nil
	case repository.DimensionPaciente:
		return "f.paciente_id", nil
	}
	return "", fmt.Errorf("dimensión desconocida: %q", dimension)
}

// saldoJoin subconsulta compartida: cobrado por factura.
const saldoJoin = `
	LEFT JOIN (
		SELECT factura_id, SUM(monto) AS cobrado
		FROM pagos GROUP BY factura_id
	) p ON p.factura_id = f.id`

// SaldosPorDimension agrupa las facturas con saldo positivo y devuelve los
// grupos con mayor deuda. El grupo NULL (sin obra social / sin centro) entra
// con EntidadID vacío.
func (r *ReporteRepo) SaldosPorDimension(ctx context.Context, userID, dimension string, limit int) ([]repository.SaldoAgrupado, error) {
	col, err := columnaDimension(dimension)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT COALESCE(%s::text, '') AS entidad,
		       SUM(GREATEST(f.monto_total - COALESCE(p.cobrado, 0), 0)) AS saldo,
		       COUNT(*) AS cantidad
		FROM facturas f
		%s
		WHERE f.user_id = $1
		  AND GREATEST(f.monto_total - COALESCE(p.cobrado, 0), 0) > 0
		GROUP BY 1
		ORDER BY saldo DESC
		LIMIT $2`, col, saldoJoin)

	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("saldos por %s: %w", dimension, err)
	}
	defer rows.Close()

	var list []repository.SaldoAgrupado
	for rows.Next() {
		var g repository.SaldoAgrupado
		if err := rows.Scan(&g.EntidadID, &g.Saldo, &g.Cantidad); err != nil {
			return nil, fmt.Errorf("scan saldo agrupado: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// NombresEntidades resuelve los nombres a mostrar de los IDs agrupados.
// Para pacientes el nombre visible es "Apellido, Nombre".
func (r *ReporteRepo) NombresEntidades(ctx context.Context, userID, dimension string, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	var query string
	switch dimension {
	case repository.DimensionObraSocial:
		query = `SELECT id, nombre FROM obras_sociales WHERE user_id = $1 AND id = ANY($2)`
	case repository.DimensionCentro:
		query = `SELECT id, nombre FROM centros_salud WHERE user_id = $1 AND id = ANY($2)`
	case repository.DimensionPaciente:
		query = `SELECT id, apellido || ', ' || nombre FROM pacientes WHERE user_id = $1 AND id = ANY($2)`
	default:
		return nil, fmt.Errorf("dimensión desconocida: %q", dimension)
	}

	rows, err := r.q.Query(ctx, query, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("nombres de %s: %w", dimension, err)
	}
	defer rows.Close()

	nombres := make(map[string]string, len(ids))
	for rows.Next() {
		var id, nombre string
		if err := rows.Scan(&id, &nombre); err != nil {
			return nil, fmt.Errorf("scan nombre: %w", err)
		}
		nombres[id] = nombre
	}
	return nombres, rows.Err()
}

// DeudaTotal suma todos los saldos pendientes del usuario.
func (r *ReporteRepo) DeudaTotal(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(GREATEST(f.monto_total - COALESCE(p.cobrado, 0), 0)), 0)
		FROM facturas f
		` + saldoJoin + `
		WHERE f.user_id = $1`
	var deuda decimal.Decimal
	if err := r.q.QueryRow(ctx, query, userID).Scan(&deuda); err != nil {
		return decimal.Zero, fmt.Errorf("deuda total: %w", err)
	}
	return deuda, nil
}

// Totales devuelve los contadores y montos globales del usuario.
func (r *ReporteRepo) Totales(ctx context.Context, userID string) (*repository.TotalesReporte, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM pacientes WHERE user_id = $1),
			(SELECT COUNT(*) FROM turnos WHERE user_id = $1),
			(SELECT COUNT(*) FROM facturas WHERE user_id = $1),
			(SELECT COALESCE(SUM(monto_total), 0) FROM facturas WHERE user_id = $1),
			(SELECT COALESCE(SUM(p.monto), 0)
			 FROM pagos p JOIN facturas f ON f.id = p.factura_id
			 WHERE f.user_id = $1)`
	var t repository.TotalesReporte
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&t.Pacientes, &t.Turnos, &t.Facturas, &t.MontoFacturado, &t.MontoCobrado,
	)
	if err != nil {
		return nil, fmt.Errorf("totales: %w", err)
	}
	return &t, nil
}
