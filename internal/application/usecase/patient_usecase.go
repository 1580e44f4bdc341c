package usecase

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

var phoneRegexp = regexp.MustCompile(`^\d{10,15}$`)

// PatientUseCase casos de uso CRUD para pacientes.
type PatientUseCase struct {
	repo     repository.PatientRepository
	roomRepo repository.HospitalRoomRepository
}

// NewPatientUseCase construye el caso de uso.
func NewPatientUseCase(repo repository.PatientRepository, roomRepo repository.HospitalRoomRepository) *PatientUseCase {
	return &PatientUseCase{repo: repo, roomRepo: roomRepo}
}

// Create registra un paciente nuevo. Si trae habitación, la referencia se
// resuelve antes de persistir.
func (uc *PatientUseCase) Create(in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	now := time.Now()
	patient := &entity.Patient{
		ID:             uuid.New().String(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		DateOfBirth:    in.DateOfBirth.Time,
		Gender:         in.Gender,
		Address:        in.Address,
		Phone:          in.Phone,
		HospitalRoomID: in.HospitalRoomID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.validatePatient(patient, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// GetByID obtiene un paciente por ID.
func (uc *PatientUseCase) GetByID(id string) (*dto.PatientResponse, error) {
	patient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, &domain.NotFoundError{Resource: "patient", ID: id}
	}
	return toPatientResponse(patient), nil
}

// List devuelve pacientes paginados.
func (uc *PatientUseCase) List(limit, offset int) (*dto.PatientListResponse, error) {
	patients, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PatientListResponse{
		Total:    len(patients),
		Patients: make([]*dto.PatientResponse, 0, len(patients)),
	}
	for _, p := range patients {
		out.Patients = append(out.Patients, toPatientResponse(p))
	}
	return out, nil
}

// Update revalida y sobrescribe los datos del paciente.
func (uc *PatientUseCase) Update(id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, &domain.NotFoundError{Resource: "patient", ID: id}
	}
	now := time.Now()
	patient.FirstName = in.FirstName
	patient.LastName = in.LastName
	patient.DateOfBirth = in.DateOfBirth.Time
	patient.Gender = in.Gender
	patient.Address = in.Address
	patient.Phone = in.Phone
	patient.HospitalRoomID = in.HospitalRoomID
	patient.UpdatedAt = now
	if err := uc.validatePatient(patient, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// Delete elimina un paciente por ID.
func (uc *PatientUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "patient", ID: id}
	}
	return nil
}

func (uc *PatientUseCase) validatePatient(p *entity.Patient, now time.Time) error {
	if p.FirstName == "" {
		return &domain.ValidationError{Field: "first_name", Reason: "es requerido"}
	}
	if len(p.FirstName) > 50 {
		return &domain.ValidationError{Field: "first_name", Reason: "máximo 50 caracteres"}
	}
	if p.LastName == "" {
		return &domain.ValidationError{Field: "last_name", Reason: "es requerido"}
	}
	if len(p.LastName) > 50 {
		return &domain.ValidationError{Field: "last_name", Reason: "máximo 50 caracteres"}
	}
	if p.DateOfBirth.IsZero() {
		return &domain.ValidationError{Field: "date_of_birth", Reason: "es requerida"}
	}
	if !p.DateOfBirth.Before(now) {
		return &domain.ValidationError{Field: "date_of_birth", Reason: "debe ser una fecha pasada"}
	}
	switch p.Gender {
	case entity.GenderMale, entity.GenderFemale, entity.GenderOther:
	default:
		return &domain.ValidationError{Field: "gender", Reason: "debe ser Male, Female u Other"}
	}
	if len(p.Address) > 255 {
		return &domain.ValidationError{Field: "address", Reason: "máximo 255 caracteres"}
	}
	if p.Phone != "" && !phoneRegexp.MatchString(p.Phone) {
		return &domain.ValidationError{Field: "phone", Reason: "debe tener entre 10 y 15 dígitos"}
	}
	if p.HospitalRoomID != "" {
		room, err := uc.roomRepo.GetByID(p.HospitalRoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return &domain.NotFoundError{Resource: "hospital_room", ID: p.HospitalRoomID}
		}
	}
	return nil
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DateOfBirth:    dto.NewDate(p.DateOfBirth),
		Gender:         p.Gender,
		Address:        p.Address,
		Phone:          p.Phone,
		HospitalRoomID: p.HospitalRoomID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
