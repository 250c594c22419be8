// Package pdf implementa el recibo imprimible de una factura de honorarios.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Factura N° + Fecha de emisión / vencimiento        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PACIENTE: Nombre + DNI + Obra Social + Centro de Salud      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Método | Nota | Monto (pagos registrados)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Cobrado / Saldo / Retención / Neto         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/medagenda/consultorio-api/internal/application/billing"
	domainbilling "github.com/medagenda/consultorio-api/internal/domain/billing"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 96, Blue: 88}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Verificar en tiempo de compilación que implementa el puerto.
var _ appbilling.FacturaPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.FacturaPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateFacturaPDF genera el recibo y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateFacturaPDF(
	_ context.Context,
	f *entity.Factura,
	paciente *entity.Paciente,
	centro *entity.CentroSalud,
	obraSocial *entity.ObraSocial,
	retencionPct decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Factura %d", f.NumeroFactura), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(f))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(pacienteRow(paciente, obraSocial, centro))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de pagos registrados
	if len(f.Pagos) > 0 {
		m.AddRows(tableHeaderRow())
		for _, r := range tablePagoRows(f.Pagos) {
			m.AddRows(r)
		}
	} else {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin pagos registrados", props.Text{
				Size: 8, Color: colorGray, Top: 2, Style: fontstyle.Italic,
			}),
		)))
	}

	// Totales conciliados
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(f, retencionPct)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: N° de factura + estado (izq), fechas (der).
func headerRow(f *entity.Factura) core.Row {
	vencimiento := "—"
	if !f.FechaVencimiento.IsZero() {
		vencimiento = f.FechaVencimiento.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(fmt.Sprintf("FACTURA N° %d", f.NumeroFactura), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado: "+f.Estado, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emisión: "+f.FechaEmision.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Vencimiento: "+vencimiento, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// pacienteRow: datos del paciente y sus vínculos de cobertura.
func pacienteRow(p *entity.Paciente, obra *entity.ObraSocial, centro *entity.CentroSalud) core.Row {
	obraNombre := "Particular"
	if obra != nil {
		obraNombre = obra.Nombre
	}
	centroNombre := "—"
	if centro != nil {
		centroNombre = centro.Nombre
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("PACIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Apellido+", "+p.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("DNI: %s   |   Obra social: %s   |   Centro: %s",
				nonEmpty(p.DNI, "—"), obraNombre, centroNombre,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de pagos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Método", 2, align.Left),
		h("Nota", 5, align.Left),
		h("Monto", 3, align.Right),
	)
}

// tablePagoRows: una fila por pago, en orden de registro.
func tablePagoRows(pagos []entity.Pago) []core.Row {
	result := make([]core.Row, 0, len(pagos))
	for _, p := range pagos {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				p.Fecha.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(p.Metodo, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				p.Nota,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				"$"+p.Monto.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: bloque de totales conciliados, con retención si hay centro.
func totalsRows(f *entity.Factura, retencionPct decimal.Decimal) []core.Row {
	balance := domainbilling.CalcularBalance(f.MontoTotal, f.Pagos)
	retencion := domainbilling.CalcularRetencion(f.MontoTotal, balance.MontoCobrado, retencionPct)

	totalRow := func(label, value string, destacado bool) core.Row {
		style := props.Text{Size: 9, Align: align.Right, Right: 1}
		labelStyle := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}
		if destacado {
			style = props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}
			labelStyle = props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2}
		}
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, labelStyle)),
			col.New(3).Add(text.New(value, style)),
		)
	}

	rows := []core.Row{
		totalRow("Monto total:", "$"+f.MontoTotal.StringFixed(2), false),
		totalRow("Cobrado:", "$"+balance.MontoCobrado.StringFixed(2), false),
		totalRow("SALDO PENDIENTE:", "$"+balance.SaldoPendiente.StringFixed(2), true),
	}
	if retencionPct.IsPositive() {
		rows = append(rows,
			totalRow(fmt.Sprintf("Retención centro (%s%%):", retencionPct.StringFixed(0)),
				"$"+retencion.RetencionSobreCobrado.StringFixed(2), false),
			totalRow("Neto profesional cobrado:",
				"$"+retencion.NetoProfesionalCobrado.StringFixed(2), false),
		)
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
