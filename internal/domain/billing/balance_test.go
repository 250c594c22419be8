package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/consultorio-api/internal/domain/billing"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del cálculo de balance: la propiedad central del sistema es
// saldoPendiente == max(montoTotal - sum(pagos.monto), 0) y la derivación
// de estado pendiente → pagada_parcial → pagada.
// ──────────────────────────────────────────────────────────────────────────────

func pagos(montos ...float64) []entity.Pago {
	out := make([]entity.Pago, 0, len(montos))
	for _, m := range montos {
		out = append(out, entity.Pago{Monto: decimal.NewFromFloat(m)})
	}
	return out
}

func TestCalcularBalance_SinPagos_Pendiente(t *testing.T) {
	b := billing.CalcularBalance(decimal.NewFromInt(1000), nil)

	assert.True(t, b.MontoCobrado.IsZero(), "sin pagos el cobrado debe ser cero")
	assert.True(t, b.SaldoPendiente.Equal(decimal.NewFromInt(1000)),
		"el saldo pendiente debe ser el total completo")
	assert.Equal(t, entity.FacturaPendiente, b.Estado)
}

func TestCalcularBalance_PagoParcial(t *testing.T) {
	b := billing.CalcularBalance(decimal.NewFromInt(1000), pagos(400))

	assert.True(t, b.MontoCobrado.Equal(decimal.NewFromInt(400)))
	assert.True(t, b.SaldoPendiente.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, entity.FacturaPagadaParcial, b.Estado)
}

func TestCalcularBalance_PagoCompleto_EnDosPagos(t *testing.T) {
	b := billing.CalcularBalance(decimal.NewFromInt(1000), pagos(400, 600))

	assert.True(t, b.MontoCobrado.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.SaldoPendiente.IsZero(), "el saldo debe quedar en cero")
	assert.Equal(t, entity.FacturaPagada, b.Estado)
}

// Al eliminar el pago de 600 la factura vuelve de pagada a pagada_parcial.
func TestCalcularBalance_EliminarPago_VuelveAParcial(t *testing.T) {
	b := billing.CalcularBalance(decimal.NewFromInt(1000), pagos(400))

	assert.Equal(t, entity.FacturaPagadaParcial, b.Estado)
	assert.True(t, b.SaldoPendiente.Equal(decimal.NewFromInt(600)))
}

// Una factura pagada a la que se le eliminan todos los pagos vuelve a
// pendiente: la regla de negocio es re-derivar siempre, no conservar estados.
func TestCalcularBalance_TodosLosPagosEliminados_Pendiente(t *testing.T) {
	b := billing.CalcularBalance(decimal.NewFromInt(1000), nil)
	assert.Equal(t, entity.FacturaPendiente, b.Estado)
}

// El saldo nunca es negativo aunque aguas arriba exista un sobrepago.
func TestCalcularBalance_Sobrepago_SaldoNuncaNegativo(t *testing.T) {
	b := billing.CalcularBalance(decimal.NewFromInt(1000), pagos(800, 500))

	assert.True(t, b.SaldoPendiente.IsZero(),
		"el saldo pendiente nunca debe ser negativo")
	assert.Equal(t, entity.FacturaPagada, b.Estado)
}

// Factura con total cero: nunca puede quedar pagada (pagada exige total > 0).
func TestCalcularBalance_TotalCero_NoPagada(t *testing.T) {
	b := billing.CalcularBalance(decimal.Zero, nil)
	assert.Equal(t, entity.FacturaPendiente, b.Estado)
}

// Idempotencia: la función es pura, dos invocaciones con el mismo input
// producen exactamente el mismo resultado.
func TestCalcularBalance_Idempotente(t *testing.T) {
	total := decimal.NewFromFloat(1234.56)
	ps := pagos(100.10, 200.20)

	b1 := billing.CalcularBalance(total, ps)
	b2 := billing.CalcularBalance(total, ps)

	require.Equal(t, b1.Estado, b2.Estado)
	assert.True(t, b1.MontoCobrado.Equal(b2.MontoCobrado))
	assert.True(t, b1.SaldoPendiente.Equal(b2.SaldoPendiente))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de ExcedePendiente: los pagos no pueden superar el total de la
// factura más allá de la tolerancia de 1e-6.
// ──────────────────────────────────────────────────────────────────────────────

func TestExcedePendiente_PagoMayorAlSaldo_Rechazado(t *testing.T) {
	// Factura de 1000 con 400 cobrados: un pago de 700 excede el saldo de 600.
	excede := billing.ExcedePendiente(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(400),
		decimal.NewFromInt(700),
	)
	assert.True(t, excede, "un pago de 700 sobre un saldo de 600 debe exceder")
}

func TestExcedePendiente_PagoExacto_Permitido(t *testing.T) {
	excede := billing.ExcedePendiente(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(400),
		decimal.NewFromInt(600),
	)
	assert.False(t, excede, "un pago que completa el total exacto debe pasar")
}

func TestExcedePendiente_DentroDeTolerancia_Permitido(t *testing.T) {
	// Exceso de 1e-7, por debajo de la tolerancia de 1e-6.
	excede := billing.ExcedePendiente(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(400),
		decimal.NewFromFloat(600.0000001),
	)
	assert.False(t, excede, "un exceso menor a la tolerancia debe permitirse")
}

func TestExcedePendiente_FueraDeTolerancia_Rechazado(t *testing.T) {
	excede := billing.ExcedePendiente(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(400),
		decimal.NewFromFloat(600.00001),
	)
	assert.True(t, excede, "un exceso mayor a la tolerancia debe rechazarse")
}

func TestMontoCobrado_SumaTodosLosPagos(t *testing.T) {
	total := billing.MontoCobrado(pagos(100, 250.50, 49.50))
	assert.True(t, total.Equal(decimal.NewFromInt(400)))
}
