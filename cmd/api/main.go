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
	"github.com/tu-usuario/healthflow-api/internal/application/auth"
	"github.com/tu-usuario/healthflow-api/internal/application/pharmacy"
	"github.com/tu-usuario/healthflow-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/healthflow-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/healthflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/healthflow-api/internal/interfaces/http"
	"github.com/tu-usuario/healthflow-api/pkg/config"
	"github.com/tu-usuario/healthflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	medicationRepo := postgres.NewMedicationRepository(pool)
	prescriptionRepo := postgres.NewPrescriptionRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	doctorRepo := postgres.NewDoctorRepository(pool)
	roomRepo := postgres.NewHospitalRoomRepository(pool)
	recordRepo := postgres.NewMedicalRecordRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	medicationUC := pharmacy.NewMedicationUseCase(medicationRepo, txRunner)
	prescriptionUC := pharmacy.NewPrescriptionUseCase(
		txRunner, prescriptionRepo, medicationRepo, patientRepo, doctorRepo,
	)

	// PDF: receta imprimible con QR de verificación
	pdfGenerator := infrapdf.NewMarotoPrescriptionGenerator()
	pdfUC := pharmacy.NewPDFUseCase(
		prescriptionRepo, patientRepo, doctorRepo, medicationRepo, pdfGenerator,
	)

	patientUC := usecase.NewPatientUseCase(patientRepo, roomRepo)
	doctorUC := usecase.NewDoctorUseCase(doctorRepo)
	roomUC := usecase.NewHospitalRoomUseCase(roomRepo, patientRepo)
	recordUC := usecase.NewMedicalRecordUseCase(recordRepo, patientRepo)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, patientRepo, doctorRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "HealthFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MedicationUC:    medicationUC,
		PrescriptionUC:  prescriptionUC,
		PDFUC:           pdfUC,
		PatientUC:       patientUC,
		DoctorUC:        doctorUC,
		HospitalRoomUC:  roomUC,
		MedicalRecordUC: recordUC,
		AppointmentUC:   appointmentUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
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
