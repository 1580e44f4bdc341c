package entity

import "time"

// MedicalRecord entrada del historial médico de un paciente.
type MedicalRecord struct {
	ID        string
	PatientID string
	Diagnosis string
	Treatment string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
