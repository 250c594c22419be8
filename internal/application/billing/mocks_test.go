package billing_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso.
// Devuelven copias en las lecturas para simular la separación con la DB.
// ──────────────────────────────────────────────────────────────────────────────

type memFacturaRepo struct {
	facturas map[string]*entity.Factura
}

func newMemFacturaRepo() *memFacturaRepo {
	return &memFacturaRepo{facturas: map[string]*entity.Factura{}}
}

func (m *memFacturaRepo) Create(f *entity.Factura) error {
	m.facturas[f.ID] = copiaFactura(f)
	return nil
}

func (m *memFacturaRepo) GetByID(userID, id string) (*entity.Factura, error) {
	f, ok := m.facturas[id]
	if !ok || f.UserID != userID {
		return nil, nil
	}
	return copiaFactura(f), nil
}

func (m *memFacturaRepo) ListByUser(userID string, filtro repository.FacturaFiltro, limit, offset int) ([]*entity.Factura, error) {
	var out []*entity.Factura
	for _, f := range m.facturas {
		if f.UserID != userID {
			continue
		}
		if filtro.PacienteID != "" && f.PacienteID != filtro.PacienteID {
			continue
		}
		if filtro.Estado != "" && f.Estado != filtro.Estado {
			continue
		}
		out = append(out, copiaFactura(f))
	}
	return out, nil
}

func (m *memFacturaRepo) Update(f *entity.Factura) error {
	m.facturas[f.ID] = copiaFactura(f)
	return nil
}

func (m *memFacturaRepo) Delete(userID, id string) error {
	delete(m.facturas, id)
	return nil
}

func (m *memFacturaRepo) CreatePago(p *entity.Pago) error {
	// El use case ya embebió el pago en la factura que luego pasa por Update;
	// acá no hay nada más que persistir.
	return nil
}

func (m *memFacturaRepo) DeletePago(facturaID, pagoID string) (bool, error) {
	f, ok := m.facturas[facturaID]
	if !ok {
		return false, nil
	}
	for _, p := range f.Pagos {
		if p.ID == pagoID {
			return true, nil
		}
	}
	return false, nil
}

func copiaFactura(f *entity.Factura) *entity.Factura {
	c := *f
	c.Pagos = append([]entity.Pago(nil), f.Pagos...)
	return &c
}

type memPacienteRepo struct {
	pacientes map[string]*entity.Paciente
}

func newMemPacienteRepo() *memPacienteRepo {
	return &memPacienteRepo{pacientes: map[string]*entity.Paciente{}}
}

func (m *memPacienteRepo) Create(p *entity.Paciente) error {
	m.pacientes[p.ID] = p
	return nil
}

func (m *memPacienteRepo) GetByID(userID, id string) (*entity.Paciente, error) {
	p, ok := m.pacientes[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

func (m *memPacienteRepo) ListByUser(userID string, limit, offset int) ([]*entity.Paciente, error) {
	var out []*entity.Paciente
	for _, p := range m.pacientes {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPacienteRepo) Update(p *entity.Paciente) error {
	m.pacientes[p.ID] = p
	return nil
}

func (m *memPacienteRepo) Delete(userID, id string) error {
	delete(m.pacientes, id)
	return nil
}

type memCentroRepo struct {
	centros map[string]*entity.CentroSalud
}

func newMemCentroRepo() *memCentroRepo {
	return &memCentroRepo{centros: map[string]*entity.CentroSalud{}}
}

func (m *memCentroRepo) Create(c *entity.CentroSalud) error {
	m.centros[c.ID] = c
	return nil
}

func (m *memCentroRepo) GetByID(userID, id string) (*entity.CentroSalud, error) {
	c, ok := m.centros[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (m *memCentroRepo) GetByUserAndNombre(userID, nombre string) (*entity.CentroSalud, error) {
	return nil, nil
}

func (m *memCentroRepo) ListByUser(userID string, limit, offset int) ([]*entity.CentroSalud, error) {
	return nil, nil
}

func (m *memCentroRepo) Update(c *entity.CentroSalud) error {
	m.centros[c.ID] = c
	return nil
}

func (m *memCentroRepo) Delete(userID, id string) error {
	delete(m.centros, id)
	return nil
}

type memObraRepo struct {
	obras map[string]*entity.ObraSocial
}

func newMemObraRepo() *memObraRepo {
	return &memObraRepo{obras: map[string]*entity.ObraSocial{}}
}

func (m *memObraRepo) Create(o *entity.ObraSocial) error {
	m.obras[o.ID] = o
	return nil
}

func (m *memObraRepo) GetByID(userID, id string) (*entity.ObraSocial, error) {
	o, ok := m.obras[id]
	if !ok || o.UserID != userID {
		return nil, nil
	}
	return o, nil
}

func (m *memObraRepo) ListByUser(userID string, limit, offset int) ([]*entity.ObraSocial, error) {
	return nil, nil
}

func (m *memObraRepo) Update(o *entity.ObraSocial) error {
	m.obras[o.ID] = o
	return nil
}

func (m *memObraRepo) Delete(userID, id string) error {
	delete(m.obras, id)
	return nil
}

// memTxRunner ejecuta el callback directo contra el repo en memoria.
type memTxRunner struct {
	repo *memFacturaRepo
}

func (m *memTxRunner) RunFacturas(_ context.Context, fn func(repo repository.FacturaRepository) error) error {
	return fn(m.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructores de entidades de prueba
// ──────────────────────────────────────────────────────────────────────────────

const (
	userA = "user-a"
	userB = "user-b"
)

func pacienteParticular(userID string) *entity.Paciente {
	return &entity.Paciente{
		ID:           uuid.New().String(),
		UserID:       userID,
		Nombre:       "Ana",
		Apellido:     "García",
		TipoAtencion: entity.AtencionParticular,
	}
}

func pacienteDeCentro(userID, centroID string) *entity.Paciente {
	return &entity.Paciente{
		ID:            uuid.New().String(),
		UserID:        userID,
		Nombre:        "Luis",
		Apellido:      "Pérez",
		TipoAtencion:  entity.AtencionCentro,
		CentroSaludID: centroID,
	}
}

func centroConRetencion(userID string, pct float64) *entity.CentroSalud {
	return &entity.CentroSalud{
		ID:                  uuid.New().String(),
		UserID:              userID,
		Nombre:              "Centro Médico Norte",
		RetencionPorcentaje: decimal.NewFromFloat(pct),
	}
}

func monto(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func filtroEstado(estado string) repository.FacturaFiltro {
	return repository.FacturaFiltro{Estado: estado}
}

func hoy() *time.Time {
	t := time.Now()
	return &t
}
