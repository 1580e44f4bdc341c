package entity

import "time"

// Estados de una cita médica.
const (
	AppointmentScheduled = "SCHEDULED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment representa una cita entre un paciente y un médico.
type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string
	Date      time.Time
	Status    string // SCHEDULED | COMPLETED | CANCELLED
	CreatedAt time.Time
	UpdatedAt time.Time
}
