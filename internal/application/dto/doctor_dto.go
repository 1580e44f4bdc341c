package dto

import "time"

// CreateDoctorRequest entrada para registrar un médico.
type CreateDoctorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// UpdateDoctorRequest entrada para actualizar un médico.
type UpdateDoctorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// DoctorResponse representación de transferencia de un médico.
type DoctorResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DoctorListResponse listado paginado de médicos.
type DoctorListResponse struct {
	Total   int               `json:"total"`
	Doctors []*DoctorResponse `json:"doctors"`
}
