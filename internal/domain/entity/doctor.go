package entity

import "time"

// Doctor representa un médico del hospital. Email es único.
type Doctor struct {
	ID        string
	FirstName string // máx. 50 caracteres
	LastName  string // máx. 50 caracteres
	Specialty string // máx. 100 caracteres
	Phone     string // 10 a 15 dígitos
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
