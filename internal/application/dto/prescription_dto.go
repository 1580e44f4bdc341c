package dto

import "time"

// CreatePrescriptionRequest entrada para emitir una receta.
// MedicationIDs debe ser un conjunto no vacío de IDs distintos.
type CreatePrescriptionRequest struct {
	PatientID        string   `json:"patient_id"`
	DoctorID         string   `json:"doctor_id"`
	MedicationIDs    []string `json:"medication_ids"`
	PrescriptionDate Date     `json:"prescription_date"`
}

// UpdatePrescriptionRequest entrada para actualizar una receta. Re-resuelve
// las referencias y sobrescribe los campos; no reajusta stock.
type UpdatePrescriptionRequest struct {
	PatientID        string   `json:"patient_id"`
	DoctorID         string   `json:"doctor_id"`
	MedicationIDs    []string `json:"medication_ids"`
	PrescriptionDate Date     `json:"prescription_date"`
}

// PrescriptionResponse representación de transferencia de una receta.
type PrescriptionResponse struct {
	ID               string    `json:"id"`
	PatientID        string    `json:"patient_id"`
	DoctorID         string    `json:"doctor_id"`
	MedicationIDs    []string  `json:"medication_ids"`
	PrescriptionDate Date      `json:"prescription_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PrescriptionListResponse listado paginado de recetas.
type PrescriptionListResponse struct {
	Total         int                     `json:"total"`
	Prescriptions []*PrescriptionResponse `json:"prescriptions"`
}
