package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/medagenda/consultorio-api/internal/application/auth"
	"github.com/medagenda/consultorio-api/internal/application/billing"
	"github.com/medagenda/consultorio-api/internal/application/reporting"
	"github.com/medagenda/consultorio-api/internal/application/usecase"
	infraai "github.com/medagenda/consultorio-api/internal/infrastructure/ai"
	infrapdf "github.com/medagenda/consultorio-api/internal/infrastructure/pdf"
	"github.com/medagenda/consultorio-api/internal/infrastructure/postgres"
	httpRouter "github.com/medagenda/consultorio-api/internal/interfaces/http"
	"github.com/medagenda/consultorio-api/pkg/config"
	"github.com/medagenda/consultorio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	pacienteRepo := postgres.NewPacienteRepository(pool)
	obraRepo := postgres.NewObraSocialRepository(pool)
	centroRepo := postgres.NewCentroSaludRepository(pool)
	turnoRepo := postgres.NewTurnoRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	pacienteUC := usecase.NewPacienteUseCase(pacienteRepo, centroRepo, obraRepo)
	obraUC := usecase.NewObraSocialUseCase(obraRepo)
	centroUC := usecase.NewCentroSaludUseCase(centroRepo)
	turnoUC := usecase.NewTurnoUseCase(turnoRepo, pacienteRepo)
	facturaUC := billing.NewFacturaUseCase(facturaRepo, pacienteRepo, centroRepo, obraRepo, txRunner)
	saldosUC := reporting.NewSaldosUseCase(reporteRepo)
	snapshotUC := reporting.NewSnapshotUseCase(reporteRepo, turnoRepo, facturaUC, saldosUC)

	// PDF: recibo imprimible de la factura con su conciliación
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(facturaRepo, pacienteRepo, centroRepo, obraRepo, pdfGenerator)

	// Asistente IA
	anthropicSvc := infraai.NewAnthropicService(cfg.AI.APIKey, cfg.AI.Model)
	aiUC := usecase.NewAIUseCase(anthropicSvc, snapshotUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Consultorio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		PacienteUC:    pacienteUC,
		ObraSocialUC:  obraUC,
		CentroSaludUC: centroUC,
		TurnoUC:       turnoUC,
		FacturaUC:     facturaUC,
		PDFUC:         pdfUC,
		SaldosUC:      saldosUC,
		AIUC:          aiUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
