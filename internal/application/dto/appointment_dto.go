package dto

import "time"

// CreateAppointmentRequest entrada para agendar una cita.
type CreateAppointmentRequest struct {
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

// UpdateAppointmentRequest entrada para actualizar una cita.
type UpdateAppointmentRequest struct {
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

// AppointmentResponse representación de transferencia de una cita.
type AppointmentResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentListResponse listado paginado de citas.
type AppointmentListResponse struct {
	Total        int                    `json:"total"`
	Appointments []*AppointmentResponse `json:"appointments"`
}
