package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// MedicalRecordUseCase casos de uso CRUD para el historial médico.
type MedicalRecordUseCase struct {
	repo        repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
}

// NewMedicalRecordUseCase construye el caso de uso.
func NewMedicalRecordUseCase(repo repository.MedicalRecordRepository, patientRepo repository.PatientRepository) *MedicalRecordUseCase {
	return &MedicalRecordUseCase{repo: repo, patientRepo: patientRepo}
}

// Create crea una entrada de historial; la referencia al paciente se
// resuelve antes de persistir.
func (uc *MedicalRecordUseCase) Create(in dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	if in.PatientID == "" {
		return nil, &domain.ValidationError{Field: "patient_id", Reason: "es requerido"}
	}
	if in.Diagnosis == "" {
		return nil, &domain.ValidationError{Field: "diagnosis", Reason: "es requerido"}
	}
	patient, err := uc.patientRepo.GetByID(in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, &domain.NotFoundError{Resource: "patient", ID: in.PatientID}
	}
	now := time.Now()
	date := in.Date.Time
	if date.IsZero() {
		date = now
	}
	record := &entity.MedicalRecord{
		ID:        uuid.New().String(),
		PatientID: in.PatientID,
		Diagnosis: in.Diagnosis,
		Treatment: in.Treatment,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return toMedicalRecordResponse(record), nil
}

// GetByID obtiene una entrada de historial por ID.
func (uc *MedicalRecordUseCase) GetByID(id string) (*dto.MedicalRecordResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &domain.NotFoundError{Resource: "medical_record", ID: id}
	}
	return toMedicalRecordResponse(record), nil
}

// ListByPatient devuelve el historial de un paciente (fecha DESC).
func (uc *MedicalRecordUseCase) ListByPatient(patientID string, limit, offset int) (*dto.MedicalRecordListResponse, error) {
	patient, err := uc.patientRepo.GetByID(patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, &domain.NotFoundError{Resource: "patient", ID: patientID}
	}
	records, err := uc.repo.ListByPatient(patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MedicalRecordListResponse{
		Total:   len(records),
		Records: make([]*dto.MedicalRecordResponse, 0, len(records)),
	}
	for _, r := range records {
		out.Records = append(out.Records, toMedicalRecordResponse(r))
	}
	return out, nil
}

// Update sobrescribe diagnóstico, tratamiento y fecha.
func (uc *MedicalRecordUseCase) Update(id string, in dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &domain.NotFoundError{Resource: "medical_record", ID: id}
	}
	if in.Diagnosis == "" {
		return nil, &domain.ValidationError{Field: "diagnosis", Reason: "es requerido"}
	}
	record.Diagnosis = in.Diagnosis
	record.Treatment = in.Treatment
	if !in.Date.IsZero() {
		record.Date = in.Date.Time
	}
	record.UpdatedAt = time.Now()
	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	return toMedicalRecordResponse(record), nil
}

// Delete elimina una entrada de historial por ID.
func (uc *MedicalRecordUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "medical_record", ID: id}
	}
	return nil
}

func toMedicalRecordResponse(r *entity.MedicalRecord) *dto.MedicalRecordResponse {
	return &dto.MedicalRecordResponse{
		ID:        r.ID,
		PatientID: r.PatientID,
		Diagnosis: r.Diagnosis,
		Treatment: r.Treatment,
		Date:      dto.NewDate(r.Date),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
