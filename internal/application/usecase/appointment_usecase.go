package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// AppointmentUseCase casos de uso CRUD para citas médicas.
type AppointmentUseCase struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(
	repo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, patientRepo: patientRepo, doctorRepo: doctorRepo}
}

// Create agenda una cita; paciente y médico se resuelven antes de persistir.
func (uc *AppointmentUseCase) Create(in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.PatientID == "" {
		return nil, &domain.ValidationError{Field: "patient_id", Reason: "es requerido"}
	}
	if in.DoctorID == "" {
		return nil, &domain.ValidationError{Field: "doctor_id", Reason: "es requerido"}
	}
	if in.Date.IsZero() {
		return nil, &domain.ValidationError{Field: "date", Reason: "es requerida"}
	}
	status := in.Status
	if status == "" {
		status = entity.AppointmentScheduled
	}
	if err := validateAppointmentStatus(status); err != nil {
		return nil, err
	}
	patient, err := uc.patientRepo.GetByID(in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, &domain.NotFoundError{Resource: "patient", ID: in.PatientID}
	}
	doctor, err := uc.doctorRepo.GetByID(in.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &domain.NotFoundError{Resource: "doctor", ID: in.DoctorID}
	}
	now := time.Now()
	appointment := &entity.Appointment{
		ID:        uuid.New().String(),
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(appointment); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appointment), nil
}

// GetByID obtiene una cita por ID.
func (uc *AppointmentUseCase) GetByID(id string) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, &domain.NotFoundError{Resource: "appointment", ID: id}
	}
	return toAppointmentResponse(appointment), nil
}

// List devuelve citas paginadas.
func (uc *AppointmentUseCase) List(limit, offset int) (*dto.AppointmentListResponse, error) {
	appointments, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.AppointmentListResponse{
		Total:        len(appointments),
		Appointments: make([]*dto.AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		out.Appointments = append(out.Appointments, toAppointmentResponse(a))
	}
	return out, nil
}

// Update sobrescribe fecha y estado de la cita.
func (uc *AppointmentUseCase) Update(id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, &domain.NotFoundError{Resource: "appointment", ID: id}
	}
	if !in.Date.IsZero() {
		appointment.Date = in.Date
	}
	if in.Status != "" {
		if err := validateAppointmentStatus(in.Status); err != nil {
			return nil, err
		}
		appointment.Status = in.Status
	}
	appointment.UpdatedAt = time.Now()
	if err := uc.repo.Update(appointment); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appointment), nil
}

// Delete elimina una cita por ID.
func (uc *AppointmentUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "appointment", ID: id}
	}
	return nil
}

func validateAppointmentStatus(status string) error {
	switch status {
	case entity.AppointmentScheduled, entity.AppointmentCompleted, entity.AppointmentCancelled:
		return nil
	default:
		return &domain.ValidationError{Field: "status", Reason: "debe ser SCHEDULED, COMPLETED o CANCELLED"}
	}
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		Date:      a.Date,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
