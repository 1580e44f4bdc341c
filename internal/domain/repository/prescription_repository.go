package repository

import "github.com/tu-usuario/healthflow-api/internal/domain/entity"

// PrescriptionRepository define el puerto de persistencia para recetas
// (cabecera + tabla de unión prescription_medications).
// GetByID devuelve (nil, nil) si la receta no existe.
type PrescriptionRepository interface {
	Create(p *entity.Prescription) error
	GetByID(id string) (*entity.Prescription, error)
	List(limit, offset int) ([]*entity.Prescription, error)
	// Update sobrescribe la cabecera y reemplaza las filas de unión.
	Update(p *entity.Prescription) error
	// Delete devuelve false si la receta no existía.
	Delete(id string) (bool, error)
}
