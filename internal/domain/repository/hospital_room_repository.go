package repository

import "github.com/tu-usuario/healthflow-api/internal/domain/entity"

// HospitalRoomRepository define el puerto de persistencia para habitaciones.
type HospitalRoomRepository interface {
	Create(r *entity.HospitalRoom) error
	GetByID(id string) (*entity.HospitalRoom, error)
	List(limit, offset int) ([]*entity.HospitalRoom, error)
	Update(r *entity.HospitalRoom) error
	Delete(id string) (bool, error)
}
