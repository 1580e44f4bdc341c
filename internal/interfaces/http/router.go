package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/healthflow-api/internal/application/auth"
	"github.com/tu-usuario/healthflow-api/internal/application/pharmacy"
	"github.com/tu-usuario/healthflow-api/internal/application/usecase"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MedicationUC    *pharmacy.MedicationUseCase
	PrescriptionUC  *pharmacy.PrescriptionUseCase
	PDFUC           *pharmacy.PDFUseCase
	PatientUC       *usecase.PatientUseCase
	DoctorUC        *usecase.DoctorUseCase
	HospitalRoomUC  *usecase.HospitalRoomUseCase
	MedicalRecordUC *usecase.MedicalRecordUseCase
	AppointmentUC   *usecase.AppointmentUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
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

	// Medications (protegido). El ajuste de stock es de farmacia/admin.
	medications := protected.Group("/medications")
	medicationHandler := NewMedicationHandler(deps.MedicationUC)
	medications.Post("/", medicationHandler.Create)
	medications.Get("/", medicationHandler.List)
	medications.Get("/:id", medicationHandler.GetByID)
	medications.Put("/:id", medicationHandler.Update)
	medications.Delete("/:id", medicationHandler.Delete)
	medications.Post("/:id/stock",
		RequireRole(entity.RoleAdmin, entity.RoleFarmaceutico),
		medicationHandler.AdjustStock)

	// Prescriptions (protegido). Solo médicos y admin emiten recetas.
	prescriptions := protected.Group("/prescriptions")
	prescriptionHandler := NewPrescriptionHandler(deps.PrescriptionUC, deps.PDFUC)
	prescriptions.Post("/",
		RequireRole(entity.RoleAdmin, entity.RoleMedico),
		prescriptionHandler.Create)
	prescriptions.Get("/", prescriptionHandler.List)
	prescriptions.Get("/:id", prescriptionHandler.GetByID)
	prescriptions.Get("/:id/pdf", prescriptionHandler.DownloadPDF)
	prescriptions.Put("/:id",
		RequireRole(entity.RoleAdmin, entity.RoleMedico),
		prescriptionHandler.Update)
	prescriptions.Delete("/:id",
		RequireRole(entity.RoleAdmin, entity.RoleMedico),
		prescriptionHandler.Delete)

	// Patients (protegido)
	patients := protected.Group("/patients")
	patientHandler := NewPatientHandler(deps.PatientUC)
	patients.Post("/", patientHandler.Create)
	patients.Get("/", patientHandler.List)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Put("/:id", patientHandler.Update)
	patients.Delete("/:id", patientHandler.Delete)

	// Medical records (protegido); el historial cuelga del paciente
	medicalRecordHandler := NewMedicalRecordHandler(deps.MedicalRecordUC)
	patients.Get("/:patientId/medical-records", medicalRecordHandler.ListByPatient)
	records := protected.Group("/medical-records")
	records.Post("/", medicalRecordHandler.Create)
	records.Get("/:id", medicalRecordHandler.GetByID)
	records.Put("/:id", medicalRecordHandler.Update)
	records.Delete("/:id", medicalRecordHandler.Delete)

	// Doctors (protegido)
	doctors := protected.Group("/doctors")
	doctorHandler := NewDoctorHandler(deps.DoctorUC)
	doctors.Post("/", doctorHandler.Create)
	doctors.Get("/", doctorHandler.List)
	doctors.Get("/:id", doctorHandler.GetByID)
	doctors.Put("/:id", doctorHandler.Update)
	doctors.Delete("/:id", doctorHandler.Delete)

	// Hospital rooms (protegido)
	rooms := protected.Group("/rooms")
	roomHandler := NewHospitalRoomHandler(deps.HospitalRoomUC)
	rooms.Post("/", roomHandler.Create)
	rooms.Get("/", roomHandler.List)
	rooms.Get("/:id", roomHandler.GetByID)
	rooms.Put("/:id", roomHandler.Update)
	rooms.Delete("/:id", roomHandler.Delete)

	// Appointments (protegido)
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)
}
