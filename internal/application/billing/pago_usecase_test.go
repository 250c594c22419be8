package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/consultorio-api/internal/application/billing"
	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
)

// facturaDePrueba crea un paciente particular y una factura por el monto dado.
func facturaDePrueba(t *testing.T, uc *billing.FacturaUseCase, pacienteRepo *memPacienteRepo, total float64) *dto.FacturaResponse {
	t.Helper()
	p := pacienteParticular(userA)
	require.NoError(t, pacienteRepo.Create(p))

	out, err := uc.Create(context.Background(), userA, dto.CreateFacturaRequest{
		Paciente:      p.ID,
		NumeroFactura: 100,
		MontoTotal:    monto(total),
		FechaEmision:  hoy(),
	})
	require.NoError(t, err)
	return out
}

// ── Registro de pagos ─────────────────────────────────────────────────────────

func TestRegistrarPago_Parcial_EstadoPagadaParcial(t *testing.T) {
	uc, _, pacienteRepo, _, _ := entorno()
	f := facturaDePrueba(t, uc, pacienteRepo, 1000)

	out, err := uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{
		Monto:  monto(400),
		Metodo: "transferencia",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.FacturaPagadaParcial, out.Estado)
	assert.False(t, out.Pagado)
	assert.True(t, out.MontoCobrado.Equal(monto(400)))
	assert.True(t, out.SaldoPendiente.Equal(monto(600)))
	require.Len(t, out.Pagos, 1)
	assert.Equal(t, "transferencia", out.Pagos[0].Metodo)
}

func TestRegistrarPago_CompletaElTotal_EstadoPagada(t *testing.T) {
	uc, _, pacienteRepo, _, _ := entorno()
	f := facturaDePrueba(t, uc, pacienteRepo, 1000)

	_, err := uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: monto(400)})
	require.NoError(t, err)
	out, err := uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: monto(600)})
	require.NoError(t, err)

	assert.Equal(t, entity.FacturaPagada, out.Estado)
	assert.True(t, out.Pagado)
	assert.True(t, out.SaldoPendiente.IsZero(),
		"con el total cubierto el saldo debe quedar en cero")
	assert.Len(t, out.Pagos, 2)
}

func TestRegistrarPago_ExcedeElPendiente_RechazadoYLedgerIntacto(t *testing.T) {
	uc, _, pacienteRepo, _, _ := entorno()
	f := facturaDePrueba(t, uc, pacienteRepo, 1000)

	_, err := uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: monto(800)})
	require.NoError(t, err)

	_, err = uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: monto(300)})
	assert.ErrorIs(t, err, domain.ErrPagoExcede)

	// El rechazo no debe dejar rastro en el ledger.
	out, err := uc.GetByID(context.Background(), userA, f.ID)
	require.NoError(t, err)
	assert.Len(t, out.Pagos, 1)
	assert.True(t, out.MontoCobrado.Equal(monto(800)))
	assert.Equal(t, entity.FacturaPagadaParcial, out.Estado)
}

func TestRegistrarPago_ExcesoDentroDeTolerancia_Aceptado(t *testing.T) {
	uc, _, pacienteRepo, _, _ := entorno()
	f := facturaDePrueba(t, uc, pacienteRepo, 100)

	// Exceso de 1e-7, por debajo de la tolerancia de redondeo (1e-6).
	out, err := uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{
		Monto: decimal.RequireFromString("100.0000001"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.FacturaPagada, out.Estado)
	assert.True(t, out.SaldoPendiente.IsZero(),
		"el saldo nunca baja de cero aunque se cobre de más")
}

func TestRegistrarPago_MontoNoPositivo_Rechazado(t *testing.T) {
	uc, _, pacienteRepo, _, _ := entorno()
	f := facturaDePrueba(t, uc, pacienteRepo, 1000)

	_, err := uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrMontoPagoInvalido)

	_, err = uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: monto(-50)})
	assert.ErrorIs(t, err, domain.ErrMontoPagoInvalido)
}

func TestRegistrarPago_FacturaDeOtroUsuario_NotFound(t *testing.T) {
	uc, _, pacienteRepo, _, _ := entorno()
	f := facturaDePrueba(t, uc, pacienteRepo, 1000)

	_, err := uc.RegistrarPago(context.Background(), userB, f.ID, dto.RegistrarPagoRequest{Monto: monto(100)})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una factura ajena no debe distinguirse de una inexistente")
}

func TestRegistrarPago_ConRetencionDeCentro_CalculaNetos(t *testing.T) {
	uc, _, pacienteRepo, centroRepo, _ := entorno()
	centro := centroConRetencion(userA, 20)
	require.NoError(t, centroRepo.Create(centro))
	p := pacienteDeCentro(userA, centro.ID)
	require.NoError(t, pacienteRepo.Create(p))

	f, err := uc.Create(context.Background(), userA, dto.CreateFacturaRequest{
		Paciente:      p.ID,
		NumeroFactura: 200,
		MontoTotal:    monto(1000),
	})
	require.NoError(t, err)

	out, err := uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: monto(500)})
	require.NoError(t, err)

	assert.True(t, out.RetencionPorcentajeCentro.Equal(monto(20)))
	assert.True(t, out.RetencionCentroSobreTotal.Equal(monto(200)))
	assert.True(t, out.RetencionCentroSobreCobrado.Equal(monto(100)),
		"la retención sobre lo cobrado acompaña los pagos reales")
	assert.True(t, out.MontoTotalNeto.Equal(monto(800)))
	assert.True(t, out.NetoProfesionalCobrado.Equal(monto(400)))
}

// ── Eliminación de pagos ──────────────────────────────────────────────────────

func TestEliminarPago_RetrocedeEstado(t *testing.T) {
	uc, _, pacienteRepo, _, _ := entorno()
	f := facturaDePrueba(t, uc, pacienteRepo, 1000)

	out, err := uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: monto(600)})
	require.NoError(t, err)
	out, err = uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: monto(400)})
	require.NoError(t, err)
	require.Equal(t, entity.FacturaPagada, out.Estado)

	// pagada → pagada_parcial
	out, err = uc.EliminarPago(context.Background(), userA, f.ID, out.Pagos[1].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FacturaPagadaParcial, out.Estado)
	assert.False(t, out.Pagado)
	assert.True(t, out.SaldoPendiente.Equal(monto(400)))

	// pagada_parcial → pendiente
	out, err = uc.EliminarPago(context.Background(), userA, f.ID, out.Pagos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FacturaPendiente, out.Estado)
	assert.True(t, out.SaldoPendiente.Equal(monto(1000)))
	assert.Empty(t, out.Pagos)
}

func TestEliminarPago_Inexistente_PagoNotFound(t *testing.T) {
	uc, _, pacienteRepo, _, _ := entorno()
	f := facturaDePrueba(t, uc, pacienteRepo, 1000)

	_, err := uc.EliminarPago(context.Background(), userA, f.ID, "pago-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrPagoNoEncontrado)
}

func TestEliminarPago_FacturaDeOtroUsuario_NotFound(t *testing.T) {
	uc, _, pacienteRepo, _, _ := entorno()
	f := facturaDePrueba(t, uc, pacienteRepo, 1000)
	out, err := uc.RegistrarPago(context.Background(), userA, f.ID, dto.RegistrarPagoRequest{Monto: monto(100)})
	require.NoError(t, err)

	_, err = uc.EliminarPago(context.Background(), userB, f.ID, out.Pagos[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
