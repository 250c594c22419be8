package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medagenda/consultorio-api/internal/application/auth"
	"github.com/medagenda/consultorio-api/internal/application/billing"
	"github.com/medagenda/consultorio-api/internal/application/reporting"
	"github.com/medagenda/consultorio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	PacienteUC    *usecase.PacienteUseCase
	ObraSocialUC  *usecase.ObraSocialUseCase
	CentroSaludUC *usecase.CentroSaludUseCase
	TurnoUC       *usecase.TurnoUseCase
	FacturaUC     *billing.FacturaUseCase
	PDFUC         *billing.PDFUseCase
	SaldosUC      *reporting.SaldosUseCase
	AIUC          *usecase.AIUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Pacientes
	pacientes := protected.Group("/pacientes")
	pacienteHandler := NewPacienteHandler(deps.PacienteUC)
	pacientes.Post("/", pacienteHandler.Create)
	pacientes.Get("/", pacienteHandler.List)
	pacientes.Get("/:id", pacienteHandler.GetByID)
	pacientes.Put("/:id", pacienteHandler.Update)
	pacientes.Delete("/:id", pacienteHandler.Delete)

	// Obras sociales
	obras := protected.Group("/obras-sociales")
	obraHandler := NewObraSocialHandler(deps.ObraSocialUC)
	obras.Post("/", obraHandler.Create)
	obras.Get("/", obraHandler.List)
	obras.Get("/:id", obraHandler.GetByID)
	obras.Put("/:id", obraHandler.Update)
	obras.Delete("/:id", obraHandler.Delete)

	// Centros de salud
	centros := protected.Group("/centros-salud")
	centroHandler := NewCentroSaludHandler(deps.CentroSaludUC)
	centros.Post("/", centroHandler.Create)
	centros.Get("/", centroHandler.List)
	centros.Get("/:id", centroHandler.GetByID)
	centros.Put("/:id", centroHandler.Update)
	centros.Delete("/:id", centroHandler.Delete)

	// Turnos
	turnos := protected.Group("/turnos")
	turnoHandler := NewTurnoHandler(deps.TurnoUC)
	turnos.Post("/", turnoHandler.Create)
	turnos.Get("/", turnoHandler.List)
	turnos.Get("/:id", turnoHandler.GetByID)
	turnos.Put("/:id", turnoHandler.Update)
	turnos.Delete("/:id", turnoHandler.Delete)

	// Facturas y pagos
	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.PDFUC)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/", facturaHandler.List)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Put("/:id", facturaHandler.Update)
	facturas.Delete("/:id", facturaHandler.Delete)
	facturas.Post("/:id/pagos", facturaHandler.RegistrarPago)
	facturas.Delete("/:id/pagos/:pagoId", facturaHandler.EliminarPago)
	facturas.Get("/:id/pdf", facturaHandler.DownloadPDF)

	// Reportes
	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.SaldosUC)
	reportes.Get("/saldos-pendientes", reporteHandler.SaldosPendientes)

	// Asistente IA
	aiGroup := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	aiGroup.Post("/chat", aiHandler.Chat)
}
