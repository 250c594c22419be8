package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CentroSalud representa un centro/clínica que retiene un porcentaje de los
// honorarios del profesional. Nombre es único por usuario (sin distinguir
// mayúsculas). RetencionPorcentaje está en el rango [0, 100].
type CentroSalud struct {
	ID                  string
	UserID              string
	Nombre              string
	RetencionPorcentaje decimal.Decimal
	Direccion           string
	Telefono            string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
