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

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// DoctorUseCase casos de uso CRUD para médicos. Email es único.
type DoctorUseCase struct {
	repo repository.DoctorRepository
}

// NewDoctorUseCase construye el caso de uso.
func NewDoctorUseCase(repo repository.DoctorRepository) *DoctorUseCase {
	return &DoctorUseCase{repo: repo}
}

// Create registra un médico nuevo. Devuelve ErrDuplicate si el email ya existe.
func (uc *DoctorUseCase) Create(in dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	now := time.Now()
	doctor := &entity.Doctor{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Specialty: in.Specialty,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validateDoctor(doctor); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(doctor); err != nil {
		return nil, err
	}
	return toDoctorResponse(doctor), nil
}

// GetByID obtiene un médico por ID.
func (uc *DoctorUseCase) GetByID(id string) (*dto.DoctorResponse, error) {
	doctor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &domain.NotFoundError{Resource: "doctor", ID: id}
	}
	return toDoctorResponse(doctor), nil
}

// List devuelve médicos paginados.
func (uc *DoctorUseCase) List(limit, offset int) (*dto.DoctorListResponse, error) {
	doctors, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.DoctorListResponse{
		Total:   len(doctors),
		Doctors: make([]*dto.DoctorResponse, 0, len(doctors)),
	}
	for _, d := range doctors {
		out.Doctors = append(out.Doctors, toDoctorResponse(d))
	}
	return out, nil
}

// Update revalida y sobrescribe los datos del médico.
func (uc *DoctorUseCase) Update(id string, in dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &domain.NotFoundError{Resource: "doctor", ID: id}
	}
	doctor.FirstName = in.FirstName
	doctor.LastName = in.LastName
	doctor.Specialty = in.Specialty
	doctor.Phone = in.Phone
	doctor.Email = in.Email
	doctor.UpdatedAt = time.Now()
	if err := validateDoctor(doctor); err != nil {
		return nil, err
	}
	if other, _ := uc.repo.GetByEmail(in.Email); other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Update(doctor); err != nil {
		return nil, err
	}
	return toDoctorResponse(doctor), nil
}

// Delete elimina un médico por ID.
func (uc *DoctorUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "doctor", ID: id}
	}
	return nil
}

func validateDoctor(d *entity.Doctor) error {
	if d.FirstName == "" {
		return &domain.ValidationError{Field: "first_name", Reason: "es requerido"}
	}
	if len(d.FirstName) > 50 {
		return &domain.ValidationError{Field: "first_name", Reason: "máximo 50 caracteres"}
	}
	if d.LastName == "" {
		return &domain.ValidationError{Field: "last_name", Reason: "es requerido"}
	}
	if len(d.LastName) > 50 {
		return &domain.ValidationError{Field: "last_name", Reason: "máximo 50 caracteres"}
	}
	if d.Specialty == "" {
		return &domain.ValidationError{Field: "specialty", Reason: "es requerida"}
	}
	if len(d.Specialty) > 100 {
		return &domain.ValidationError{Field: "specialty", Reason: "máximo 100 caracteres"}
	}
	if d.Phone != "" && !phoneRegexp.MatchString(d.Phone) {
		return &domain.ValidationError{Field: "phone", Reason: "debe tener entre 10 y 15 dígitos"}
	}
	if d.Email == "" {
		return &domain.ValidationError{Field: "email", Reason: "es requerido"}
	}
	if !emailRegexp.MatchString(d.Email) {
		return &domain.ValidationError{Field: "email", Reason: "formato de email inválido"}
	}
	return nil
}

func toDoctorResponse(d *entity.Doctor) *dto.DoctorResponse {
	return &dto.DoctorResponse{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Specialty: d.Specialty,
		Phone:     d.Phone,
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
