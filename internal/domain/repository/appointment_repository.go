package repository

import "github.com/tu-usuario/healthflow-api/internal/domain/entity"

// AppointmentRepository define el puerto de persistencia para citas.
type AppointmentRepository interface {
	Create(a *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	List(limit, offset int) ([]*entity.Appointment, error)
	Update(a *entity.Appointment) error
	Delete(id string) (bool, error)
}
