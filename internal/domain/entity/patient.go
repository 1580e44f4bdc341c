package entity

import "time"

// Géneros aceptados para Patient.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Patient representa un paciente del hospital. HospitalRoomID es una
// referencia unidireccional opcional a la habitación asignada; el historial
// médico se consulta por patient_id en medical_records, no como puntero.
type Patient struct {
	ID             string
	FirstName      string // máx. 50 caracteres
	LastName       string // máx. 50 caracteres
	DateOfBirth    time.Time
	Gender         string // Male | Female | Other
	Address        string // máx. 255 caracteres
	Phone          string // 10 a 15 dígitos
	HospitalRoomID string // vacío = sin habitación asignada
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
