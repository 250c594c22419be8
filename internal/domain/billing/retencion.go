package billing

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// Retencion desglosa el efecto del porcentaje que retiene un centro de salud
// sobre los montos brutos de una factura. Se recalcula en cada lectura y
// nunca se persiste: si el centro cambia su porcentaje, todas las facturas
// reflejan el nuevo valor retroactivamente.
type Retencion struct {
	Porcentaje             decimal.Decimal
	RetencionSobreTotal    decimal.Decimal
	RetencionSobreCobrado  decimal.Decimal
	MontoTotalNeto         decimal.Decimal
	NetoProfesionalCobrado decimal.Decimal
}

// CalcularRetencion aplica porcentaje (en [0,100]; 0 si no hay centro) sobre
// el monto total y el monto cobrado de la factura.
func CalcularRetencion(montoTotal, montoCobrado, porcentaje decimal.Decimal) Retencion {
	sobreTotal := montoTotal.Mul(porcentaje).Div(cien)
	sobreCobrado := montoCobrado.Mul(porcentaje).Div(cien)
	return Retencion{
		Porcentaje:             porcentaje,
		RetencionSobreTotal:    sobreTotal,
		RetencionSobreCobrado:  sobreCobrado,
		MontoTotalNeto:         montoTotal.Sub(sobreTotal),
		NetoProfesionalCobrado: montoCobrado.Sub(sobreCobrado),
	}
}
