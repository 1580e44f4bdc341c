// seed puebla la base de datos con datos de ejemplo: habitaciones, pacientes,
// doctores, medicamentos y una receta emitida por el flujo real (con descuento
// de stock).
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (variables de entorno / .env).
package main

import (
	"context"
	"time"

	"github.com/tu-usuario/healthflow-api/internal/application/auth"
	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/application/pharmacy"
	"github.com/tu-usuario/healthflow-api/internal/application/usecase"
	"github.com/tu-usuario/healthflow-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/healthflow-api/pkg/config"
	"github.com/tu-usuario/healthflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

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
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	roomUC := usecase.NewHospitalRoomUseCase(roomRepo, patientRepo)
	patientUC := usecase.NewPatientUseCase(patientRepo, roomRepo)
	doctorUC := usecase.NewDoctorUseCase(doctorRepo)
	medicationUC := pharmacy.NewMedicationUseCase(medicationRepo, txRunner)
	prescriptionUC := pharmacy.NewPrescriptionUseCase(
		txRunner, prescriptionRepo, medicationRepo, patientRepo, doctorRepo,
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Usuario admin inicial
	if _, err := authUC.RegisterUser(dto.RegisterRequest{
		Name:     "Administrador",
		Email:    "admin@healthflow.local",
		Password: "cambiar-ahora",
		Role:     "admin",
	}); err != nil {
		log.Warn().Err(err).Msg("usuario admin (puede ya existir)")
	}

	room, err := roomUC.Create(dto.CreateHospitalRoomRequest{
		RoomNumber:   "101",
		Type:         "General",
		Availability: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear habitación")
	}

	patient, err := patientUC.Create(dto.CreatePatientRequest{
		FirstName:      "María",
		LastName:       "González",
		DateOfBirth:    dto.NewDate(time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC)),
		Gender:         "Female",
		Address:        "Calle 45 #12-30, Bogotá",
		Phone:          "3104567890",
		HospitalRoomID: room.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear paciente")
	}

	doctor, err := doctorUC.Create(dto.CreateDoctorRequest{
		FirstName: "Carlos",
		LastName:  "Ramírez",
		Specialty: "Medicina Interna",
		Phone:     "3201234567",
		Email:     "c.ramirez@healthflow.local",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear doctor")
	}

	nextYear := time.Now().AddDate(1, 0, 0)
	var medicationIDs []string
	for _, m := range []dto.CreateMedicationRequest{
		{Name: "Amoxicilina", Dosage: "500mg", Description: "Antibiótico de amplio espectro", Stock: 120, ExpirationDate: dto.NewDate(nextYear)},
		{Name: "Ibuprofeno", Dosage: "400mg", Description: "Antiinflamatorio no esteroideo", Stock: 200, ExpirationDate: dto.NewDate(nextYear)},
		{Name: "Omeprazol", Dosage: "20mg", Description: "Inhibidor de bomba de protones", Stock: 80, ExpirationDate: dto.NewDate(nextYear)},
	} {
		created, err := medicationUC.Create(m)
		if err != nil {
			log.Fatal().Err(err).Str("name", m.Name).Msg("crear medicamento")
		}
		medicationIDs = append(medicationIDs, created.ID)
	}

	prescription, err := prescriptionUC.Create(ctx, dto.CreatePrescriptionRequest{
		PatientID:        patient.ID,
		DoctorID:         doctor.ID,
		MedicationIDs:    medicationIDs,
		PrescriptionDate: dto.NewDate(time.Now()),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("emitir receta")
	}

	log.Info().
		Str("patient", patient.ID).
		Str("doctor", doctor.ID).
		Str("prescription", prescription.ID).
		Int("medications", len(medicationIDs)).
		Msg("datos de ejemplo cargados")
}
