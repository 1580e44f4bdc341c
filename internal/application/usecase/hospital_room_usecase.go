package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// HospitalRoomUseCase casos de uso CRUD para habitaciones.
type HospitalRoomUseCase struct {
	repo        repository.HospitalRoomRepository
	patientRepo repository.PatientRepository
}

// NewHospitalRoomUseCase construye el caso de uso.
func NewHospitalRoomUseCase(repo repository.HospitalRoomRepository, patientRepo repository.PatientRepository) *HospitalRoomUseCase {
	return &HospitalRoomUseCase{repo: repo, patientRepo: patientRepo}
}

// Create crea una habitación nueva.
func (uc *HospitalRoomUseCase) Create(in dto.CreateHospitalRoomRequest) (*dto.HospitalRoomResponse, error) {
	if in.RoomNumber == "" {
		return nil, &domain.ValidationError{Field: "room_number", Reason: "es requerido"}
	}
	now := time.Now()
	room := &entity.HospitalRoom{
		ID:           uuid.New().String(),
		RoomNumber:   in.RoomNumber,
		Type:         in.Type,
		Availability: in.Availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(room); err != nil {
		return nil, err
	}
	return toHospitalRoomResponse(room), nil
}

// GetByID obtiene una habitación por ID.
func (uc *HospitalRoomUseCase) GetByID(id string) (*dto.HospitalRoomResponse, error) {
	room, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, &domain.NotFoundError{Resource: "hospital_room", ID: id}
	}
	return toHospitalRoomResponse(room), nil
}

// List devuelve habitaciones paginadas.
func (uc *HospitalRoomUseCase) List(limit, offset int) (*dto.HospitalRoomListResponse, error) {
	rooms, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.HospitalRoomListResponse{
		Total: len(rooms),
		Rooms: make([]*dto.HospitalRoomResponse, 0, len(rooms)),
	}
	for _, r := range rooms {
		out.Rooms = append(out.Rooms, toHospitalRoomResponse(r))
	}
	return out, nil
}

// Update sobrescribe los datos de la habitación.
func (uc *HospitalRoomUseCase) Update(id string, in dto.UpdateHospitalRoomRequest) (*dto.HospitalRoomResponse, error) {
	room, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, &domain.NotFoundError{Resource: "hospital_room", ID: id}
	}
	if in.RoomNumber == "" {
		return nil, &domain.ValidationError{Field: "room_number", Reason: "es requerido"}
	}
	room.RoomNumber = in.RoomNumber
	room.Type = in.Type
	room.Availability = in.Availability
	room.UpdatedAt = time.Now()
	if err := uc.repo.Update(room); err != nil {
		return nil, err
	}
	return toHospitalRoomResponse(room), nil
}

// Delete elimina una habitación. Devuelve ErrConflict si aún tiene
// pacientes asignados.
func (uc *HospitalRoomUseCase) Delete(id string) error {
	count, err := uc.patientRepo.CountByRoom(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "hospital_room", ID: id}
	}
	return nil
}

func toHospitalRoomResponse(r *entity.HospitalRoom) *dto.HospitalRoomResponse {
	return &dto.HospitalRoomResponse{
		ID:           r.ID,
		RoomNumber:   r.RoomNumber,
		Type:         r.Type,
		Availability: r.Availability,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
