package entity

import "time"

// Roles del personal del hospital.
const (
	RoleAdmin        = "admin"
	RoleMedico       = "medico"
	RoleFarmaceutico = "farmaceutico"
)

// User usuario del sistema (personal del hospital). PasswordHash es bcrypt.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | medico | farmaceutico
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
