package dto

import "time"

// CreateMedicalRecordRequest entrada para crear una entrada de historial.
type CreateMedicalRecordRequest struct {
	PatientID string `json:"patient_id"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Date      Date   `json:"date"`
}

// UpdateMedicalRecordRequest entrada para actualizar una entrada de historial.
type UpdateMedicalRecordRequest struct {
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Date      Date   `json:"date"`
}

// MedicalRecordResponse representación de transferencia de una entrada de historial.
type MedicalRecordResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Diagnosis string    `json:"diagnosis"`
	Treatment string    `json:"treatment"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MedicalRecordListResponse historial paginado de un paciente.
type MedicalRecordListResponse struct {
	Total   int                      `json:"total"`
	Records []*MedicalRecordResponse `json:"records"`
}
