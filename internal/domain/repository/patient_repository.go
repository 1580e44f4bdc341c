package repository

import "github.com/tu-usuario/healthflow-api/internal/domain/entity"

// PatientRepository define el puerto de persistencia para pacientes.
// GetByID devuelve (nil, nil) si el paciente no existe.
type PatientRepository interface {
	Create(p *entity.Patient) error
	GetByID(id string) (*entity.Patient, error)
	List(limit, offset int) ([]*entity.Patient, error)
	Update(p *entity.Patient) error
	Delete(id string) (bool, error)
	// CountByRoom cuenta pacientes asignados a una habitación (para impedir
	// borrar habitaciones ocupadas).
	CountByRoom(roomID string) (int, error)
}
