package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// PDFUseCase genera el recibo PDF de una factura con su vista conciliada
// (pagos, saldo y retención del centro al momento de la descarga).
type PDFUseCase struct {
	facturaRepo  repository.FacturaRepository
	pacienteRepo repository.PacienteRepository
	centroRepo   repository.CentroSaludRepository
	obraRepo     repository.ObraSocialRepository
	generator    FacturaPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	facturaRepo repository.FacturaRepository,
	pacienteRepo repository.PacienteRepository,
	centroRepo repository.CentroSaludRepository,
	obraRepo repository.ObraSocialRepository,
	generator FacturaPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		facturaRepo:  facturaRepo,
		pacienteRepo: pacienteRepo,
		centroRepo:   centroRepo,
		obraRepo:     obraRepo,
		generator:    generator,
	}
}

// DownloadFacturaPDF carga la factura (con tenant-scope), sus entidades
// relacionadas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound si la factura no existe o no pertenece al usuario.
func (uc *PDFUseCase) DownloadFacturaPDF(ctx context.Context, userID, facturaID string) (pdfBytes []byte, filename string, err error) {
	f, err := uc.facturaRepo.GetByID(userID, facturaID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if f == nil {
		return nil, "", domain.ErrNotFound
	}

	paciente, err := uc.pacienteRepo.GetByID(userID, f.PacienteID)
	if err != nil || paciente == nil {
		return nil, "", fmt.Errorf("pdf: obtener paciente: %w", err)
	}

	var centro *entity.CentroSalud
	retencionPct := decimal.Zero
	if f.CentroSaludID != "" {
		centro, err = uc.centroRepo.GetByID(userID, f.CentroSaludID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener centro: %w", err)
		}
		if centro != nil {
			retencionPct = centro.RetencionPorcentaje
		}
	}

	var obra *entity.ObraSocial
	if f.ObraSocialID != "" {
		obra, _ = uc.obraRepo.GetByID(userID, f.ObraSocialID)
	}

	pdfBytes, err = uc.generator.GenerateFacturaPDF(ctx, f, paciente, centro, obra, retencionPct)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%d.pdf", f.NumeroFactura)
	return pdfBytes, filename, nil
}
