package entity

import "time"

// HospitalRoom representa una habitación del hospital. Los pacientes
// asignados se consultan por hospital_room_id en patients.
type HospitalRoom struct {
	ID           string
	RoomNumber   string
	Type         string // General, ICU, Pediatrics, ...
	Availability bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
