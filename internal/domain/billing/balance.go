// Package billing contiene los servicios de dominio de facturación:
// cálculo de saldos, derivación de estado y retenciones de centros de salud.
// Todas las funciones son puras; los casos de uso las invocan después de
// cada mutación de pagos o del monto total.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/medagenda/consultorio-api/internal/domain/entity"
)

// Tolerancia admitida en comparaciones monetarias (arrastre de redondeo).
var Tolerancia = decimal.New(1, -6) // 1e-6

// Balance es el resultado de conciliar los pagos de una factura contra su
// monto total. Se recalcula siempre; nunca se confía en un estado almacenado
// sin posibilidad de re-derivarlo.
type Balance struct {
	MontoCobrado   decimal.Decimal
	SaldoPendiente decimal.Decimal
	Estado         string
}

// MontoCobrado suma los montos de todos los pagos registrados.
func MontoCobrado(pagos []entity.Pago) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pagos {
		total = total.Add(p.Monto)
	}
	return total
}

// CalcularBalance deriva el monto cobrado, el saldo pendiente y el estado de
// una factura a partir de su monto total y sus pagos.
//
//   - SaldoPendiente nunca es negativo, incluso si aguas arriba se coló un
//     sobrepago.
//   - Estado: pagada si cobrado >= total y total > 0; pagada_parcial si
//     0 < cobrado < total; pendiente en el resto (una factura con todos sus
//     pagos eliminados vuelve a pendiente, aunque estuviera pagada).
func CalcularBalance(montoTotal decimal.Decimal, pagos []entity.Pago) Balance {
	cobrado := MontoCobrado(pagos)

	saldo := montoTotal.Sub(cobrado)
	if saldo.IsNegative() {
		saldo = decimal.Zero
	}

	estado := entity.FacturaPendiente
	switch {
	case cobrado.GreaterThanOrEqual(montoTotal) && montoTotal.IsPositive():
		estado = entity.FacturaPagada
	case cobrado.IsPositive() && cobrado.LessThan(montoTotal):
		estado = entity.FacturaPagadaParcial
	}

	return Balance{
		MontoCobrado:   cobrado,
		SaldoPendiente: saldo,
		Estado:         estado,
	}
}

// ExcedePendiente informa si registrar un pago de nuevoMonto sobre una
// factura con cobradoPrevio superaría el monto total más allá de la
// tolerancia. Los pagos nunca pueden empujar la factura por encima del total.
func ExcedePendiente(montoTotal, cobradoPrevio, nuevoMonto decimal.Decimal) bool {
	return cobradoPrevio.Add(nuevoMonto).Sub(montoTotal).GreaterThan(Tolerancia)
}
