package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/medagenda/consultorio-api/internal/domain/billing"
)

// Centro con retención del 20%, factura de 1000 con 400 cobrados:
// retención sobre total 200, neto 800; retención sobre cobrado 80, neto 320.
func TestCalcularRetencion_VeintePorCiento(t *testing.T) {
	r := billing.CalcularRetencion(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(400),
		decimal.NewFromInt(20),
	)

	assert.True(t, r.RetencionSobreTotal.Equal(decimal.NewFromInt(200)),
		"retención sobre el total: 1000 * 20% = 200")
	assert.True(t, r.MontoTotalNeto.Equal(decimal.NewFromInt(800)),
		"neto del total: 1000 - 200 = 800")
	assert.True(t, r.RetencionSobreCobrado.Equal(decimal.NewFromInt(80)),
		"retención sobre cobrado: 400 * 20% = 80")
	assert.True(t, r.NetoProfesionalCobrado.Equal(decimal.NewFromInt(320)),
		"neto cobrado del profesional: 400 - 80 = 320")
}

// Sin centro asociado el porcentaje es 0 y los netos igualan a los brutos.
func TestCalcularRetencion_SinCentro_PorcentajeCero(t *testing.T) {
	r := billing.CalcularRetencion(
		decimal.NewFromInt(1500),
		decimal.NewFromInt(500),
		decimal.Zero,
	)

	assert.True(t, r.RetencionSobreTotal.IsZero())
	assert.True(t, r.RetencionSobreCobrado.IsZero())
	assert.True(t, r.MontoTotalNeto.Equal(decimal.NewFromInt(1500)))
	assert.True(t, r.NetoProfesionalCobrado.Equal(decimal.NewFromInt(500)))
}

// Retención del 100%: el centro retiene todo, el neto del profesional es cero.
func TestCalcularRetencion_CienPorCiento(t *testing.T) {
	r := billing.CalcularRetencion(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(100),
	)

	assert.True(t, r.MontoTotalNeto.IsZero())
	assert.True(t, r.NetoProfesionalCobrado.IsZero())
}

// La función es pura: mismo input, mismo resultado.
func TestCalcularRetencion_Idempotente(t *testing.T) {
	r1 := billing.CalcularRetencion(decimal.NewFromFloat(999.99), decimal.NewFromFloat(333.33), decimal.NewFromInt(15))
	r2 := billing.CalcularRetencion(decimal.NewFromFloat(999.99), decimal.NewFromFloat(333.33), decimal.NewFromInt(15))

	assert.True(t, r1.RetencionSobreTotal.Equal(r2.RetencionSobreTotal))
	assert.True(t, r1.NetoProfesionalCobrado.Equal(r2.NetoProfesionalCobrado))
}
