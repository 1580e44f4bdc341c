package entity

import "time"

// Prescription representa una receta emitida: referencia a un paciente, un
// médico y un conjunto no vacío de medicamentos distintos. Una receta
// persistida es evidencia de que el stock de cada medicamento referenciado
// fue descontado en exactamente 1 unidad dentro de la misma transacción.
type Prescription struct {
	ID               string
	PatientID        string
	DoctorID         string
	MedicationIDs    []string // tabla de unión prescription_medications
	PrescriptionDate time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
