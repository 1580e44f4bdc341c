package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo implementación de PatientRepository sobre PostgreSQL.
type PatientRepo struct {
	q Querier
}

// NewPatientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

const patientColumns = `id, first_name, last_name, date_of_birth, gender, address, phone, hospital_room_id, created_at, updated_at`

// Create persiste un paciente nuevo.
func (r *PatientRepo) Create(p *entity.Patient) error {
	query := `
		INSERT INTO patients (` + patientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Address, p.Phone, p.HospitalRoomID,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// GetByID obtiene un paciente por ID. Devuelve (nil, nil) si no existe.
func (r *PatientRepo) GetByID(id string) (*entity.Patient, error) {
	query := `
		SELECT id, first_name, last_name, date_of_birth, gender, address, phone,
		       COALESCE(hospital_room_id, ''), created_at, updated_at
		FROM patients WHERE id = $1`
	var p entity.Patient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender, &p.Address, &p.Phone,
		&p.HospitalRoomID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return &p, nil
}

// List devuelve pacientes paginados por apellido y nombre.
func (r *PatientRepo) List(limit, offset int) ([]*entity.Patient, error) {
	query := `
		SELECT id, first_name, last_name, date_of_birth, gender, address, phone,
		       COALESCE(hospital_room_id, ''), created_at, updated_at
		FROM patients ORDER BY last_name ASC, first_name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender, &p.Address,
			&p.Phone, &p.HospitalRoomID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update sobrescribe todos los campos del paciente.
func (r *PatientRepo) Update(p *entity.Patient) error {
	query := `
		UPDATE patients
		SET first_name = $2, last_name = $3, date_of_birth = $4, gender = $5,
		    address = $6, phone = $7, hospital_room_id = NULLIF($8, ''), updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Address, p.Phone,
		p.HospitalRoomID, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	return nil
}

// Delete elimina un paciente. Devuelve false si no existía.
func (r *PatientRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete patient: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByRoom cuenta pacientes asignados a una habitación.
func (r *PatientRepo) CountByRoom(roomID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM patients WHERE hospital_room_id = $1`, roomID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count patients by room: %w", err)
	}
	return count, nil
}
