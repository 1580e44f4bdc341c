package dto

import "time"

// CreatePatientRequest entrada para registrar un paciente.
type CreatePatientRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    Date   `json:"date_of_birth"`
	Gender         string `json:"gender"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	HospitalRoomID string `json:"hospital_room_id"`
}

// UpdatePatientRequest entrada para actualizar un paciente.
type UpdatePatientRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    Date   `json:"date_of_birth"`
	Gender         string `json:"gender"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	HospitalRoomID string `json:"hospital_room_id"`
}

// PatientResponse representación de transferencia de un paciente.
type PatientResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    Date      `json:"date_of_birth"`
	Gender         string    `json:"gender"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	HospitalRoomID string    `json:"hospital_room_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PatientListResponse listado paginado de pacientes.
type PatientListResponse struct {
	Total    int                `json:"total"`
	Patients []*PatientResponse `json:"patients"`
}
