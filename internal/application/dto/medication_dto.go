package dto

import "time"

// CreateMedicationRequest entrada para crear un medicamento.
type CreateMedicationRequest struct {
	Name           string `json:"name"`
	Dosage         string `json:"dosage"`
	Description    string `json:"description"`
	Stock          int    `json:"stock"`
	ExpirationDate Date   `json:"expiration_date"`
}

// UpdateMedicationRequest entrada para actualizar un medicamento.
// Sobrescribe todos los campos (sin aplicación parcial).
type UpdateMedicationRequest struct {
	Name           string `json:"name"`
	Dosage         string `json:"dosage"`
	Description    string `json:"description"`
	Stock          int    `json:"stock"`
	ExpirationDate Date   `json:"expiration_date"`
}

// AdjustStockRequest entrada para ajustar stock: delta positivo suma,
// negativo descuenta. Cero es inválido.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// MedicationResponse representación de transferencia de un medicamento.
type MedicationResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Dosage         string    `json:"dosage"`
	Description    string    `json:"description"`
	Stock          int       `json:"stock"`
	ExpirationDate Date      `json:"expiration_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MedicationListResponse listado paginado de medicamentos.
type MedicationListResponse struct {
	Total       int                   `json:"total"`
	Medications []*MedicationResponse `json:"medications"`
}
