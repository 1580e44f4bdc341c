package entity

import "time"

// Medication representa un medicamento del inventario de farmacia.
// Stock es el contador autoritativo de unidades disponibles; solo se
// modifica a través del ledger (casos de uso de pharmacy), nunca directo.
// Invariante: Stock >= 0 en todo momento.
type Medication struct {
	ID             string
	Name           string // máx. 100 caracteres
	Dosage         string // máx. 50 caracteres, ej. "500mg"
	Description    string
	Stock          int
	ExpirationDate time.Time // debe ser estrictamente futura al crear/actualizar
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
