package repository

import "github.com/tu-usuario/healthflow-api/internal/domain/entity"

// DoctorRepository define el puerto de persistencia para médicos.
// GetByID y GetByEmail devuelven (nil, nil) si no hay coincidencia.
type DoctorRepository interface {
	Create(d *entity.Doctor) error
	GetByID(id string) (*entity.Doctor, error)
	GetByEmail(email string) (*entity.Doctor, error)
	List(limit, offset int) ([]*entity.Doctor, error)
	Update(d *entity.Doctor) error
	Delete(id string) (bool, error)
}
