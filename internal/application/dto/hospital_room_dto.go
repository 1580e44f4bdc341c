package dto

import "time"

// CreateHospitalRoomRequest entrada para crear una habitación.
type CreateHospitalRoomRequest struct {
	RoomNumber   string `json:"room_number"`
	Type         string `json:"type"`
	Availability bool   `json:"availability"`
}

// UpdateHospitalRoomRequest entrada para actualizar una habitación.
type UpdateHospitalRoomRequest struct {
	RoomNumber   string `json:"room_number"`
	Type         string `json:"type"`
	Availability bool   `json:"availability"`
}

// HospitalRoomResponse representación de transferencia de una habitación.
type HospitalRoomResponse struct {
	ID           string    `json:"id"`
	RoomNumber   string    `json:"room_number"`
	Type         string    `json:"type"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HospitalRoomListResponse listado paginado de habitaciones.
type HospitalRoomListResponse struct {
	Total int                     `json:"total"`
	Rooms []*HospitalRoomResponse `json:"rooms"`
}
