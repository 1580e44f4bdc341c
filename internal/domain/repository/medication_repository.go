package repository

import "github.com/tu-usuario/healthflow-api/internal/domain/entity"

// MedicationRepository define el puerto de persistencia para medicamentos.
// GetByID devuelve (nil, nil) si el medicamento no existe.
type MedicationRepository interface {
	Create(m *entity.Medication) error
	GetByID(id string) (*entity.Medication, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Medication, error)
	List(limit, offset int) ([]*entity.Medication, error)
	Update(m *entity.Medication) error
	// UpdateStock escribe el contador de stock. Todo cambio de stock debe
	// pasar por los casos de uso de pharmacy, nunca por llamadas directas.
	UpdateStock(id string, stock int) error
	Delete(id string) (bool, error)
}
