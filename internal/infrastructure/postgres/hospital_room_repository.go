package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

var _ repository.HospitalRoomRepository = (*HospitalRoomRepo)(nil)

// HospitalRoomRepo implementación de HospitalRoomRepository sobre PostgreSQL.
type HospitalRoomRepo struct {
	q Querier
}

func NewHospitalRoomRepository(q Querier) *HospitalRoomRepo {
	return &HospitalRoomRepo{q: q}
}

const hospitalRoomColumns = `id, room_number, room_type, availability, created_at, updated_at`

// Create persiste una habitación nueva. El número de habitación es único.
func (r *HospitalRoomRepo) Create(room *entity.HospitalRoom) error {
	query := `
		INSERT INTO hospital_rooms (` + hospitalRoomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.RoomNumber, room.Type, room.Availability, room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert hospital room: %w", err)
	}
	return nil
}

// GetByID obtiene una habitación por ID. Devuelve (nil, nil) si no existe.
func (r *HospitalRoomRepo) GetByID(id string) (*entity.HospitalRoom, error) {
	query := `SELECT ` + hospitalRoomColumns + ` FROM hospital_rooms WHERE id = $1`
	var room entity.HospitalRoom
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&room.ID, &room.RoomNumber, &room.Type, &room.Availability, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital room: %w", err)
	}
	return &room, nil
}

// List devuelve habitaciones paginadas por número.
func (r *HospitalRoomRepo) List(limit, offset int) ([]*entity.HospitalRoom, error) {
	query := `SELECT ` + hospitalRoomColumns + ` FROM hospital_rooms ORDER BY room_number ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list hospital rooms: %w", err)
	}
	defer rows.Close()

	var out []*entity.HospitalRoom
	for rows.Next() {
		var room entity.HospitalRoom
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.Type, &room.Availability,
			&room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hospital room: %w", err)
		}
		out = append(out, &room)
	}
	return out, rows.Err()
}

// Update sobrescribe todos los campos de la habitación.
func (r *HospitalRoomRepo) Update(room *entity.HospitalRoom) error {
	query := `
		UPDATE hospital_rooms
		SET room_number = $2, room_type = $3, availability = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.RoomNumber, room.Type, room.Availability, room.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update hospital room: %w", err)
	}
	return nil
}

// Delete elimina una habitación. Devuelve false si no existía.
func (r *HospitalRoomRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM hospital_rooms WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete hospital room: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
