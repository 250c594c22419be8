package billing

import (
	"github.com/shopspring/decimal"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	domainbilling "github.com/medagenda/consultorio-api/internal/domain/billing"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
)

const fechaLayout = "2006-01-02"

// ArmarFacturaResponse construye la vista conciliada de una factura: balance
// y retención derivados al momento, estado almacenado como fuente de verdad
// (puede haber sido pisado explícitamente por el caller).
func ArmarFacturaResponse(f *entity.Factura, pacienteNombre string, retencionPct decimal.Decimal) *dto.FacturaResponse {
	balance := domainbilling.CalcularBalance(f.MontoTotal, f.Pagos)
	retencion := domainbilling.CalcularRetencion(f.MontoTotal, balance.MontoCobrado, retencionPct)

	pagos := make([]dto.PagoResponse, 0, len(f.Pagos))
	for _, p := range f.Pagos {
		pagos = append(pagos, dto.PagoResponse{
			ID:     p.ID,
			Monto:  p.Monto,
			Fecha:  p.Fecha,
			Metodo: p.Metodo,
			Nota:   p.Nota,
		})
	}

	vencimiento := ""
	if !f.FechaVencimiento.IsZero() {
		vencimiento = f.FechaVencimiento.Format(fechaLayout)
	}

	return &dto.FacturaResponse{
		ID:               f.ID,
		Paciente:         f.PacienteID,
		PacienteNombre:   pacienteNombre,
		ObraSocial:       f.ObraSocialID,
		CentroSalud:      f.CentroSaludID,
		NumeroFactura:    f.NumeroFactura,
		MontoTotal:       f.MontoTotal,
		FechaEmision:     f.FechaEmision.Format(fechaLayout),
		FechaVencimiento: vencimiento,
		Estado:           f.Estado,
		Observaciones:    f.Observaciones,
		Pagos:            pagos,

		MontoCobrado:                balance.MontoCobrado,
		SaldoPendiente:              balance.SaldoPendiente,
		Pagado:                      f.Pagado,
		RetencionPorcentajeCentro:   retencion.Porcentaje,
		RetencionCentroSobreTotal:   retencion.RetencionSobreTotal,
		RetencionCentroSobreCobrado: retencion.RetencionSobreCobrado,
		MontoTotalNeto:              retencion.MontoTotalNeto,
		NetoProfesionalCobrado:      retencion.NetoProfesionalCobrado,
	}
}
