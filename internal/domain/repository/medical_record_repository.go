package repository

import "github.com/tu-usuario/healthflow-api/internal/domain/entity"

// MedicalRecordRepository define el puerto de persistencia para el historial médico.
type MedicalRecordRepository interface {
	Create(r *entity.MedicalRecord) error
	GetByID(id string) (*entity.MedicalRecord, error)
	// ListByPatient devuelve el historial de un paciente ordenado por fecha DESC.
	ListByPatient(patientID string, limit, offset int) ([]*entity.MedicalRecord, error)
	Update(r *entity.MedicalRecord) error
	Delete(id string) (bool, error)
}
