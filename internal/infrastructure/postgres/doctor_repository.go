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

var _ repository.DoctorRepository = (*DoctorRepo)(nil)

// DoctorRepo implementación de DoctorRepository sobre PostgreSQL.
type DoctorRepo struct {
	q Querier
}

func NewDoctorRepository(q Querier) *DoctorRepo {
	return &DoctorRepo{q: q}
}

const doctorColumns = `id, first_name, last_name, specialty, phone, email, created_at, updated_at`

// Create persiste un doctor nuevo. El email es único.
func (r *DoctorRepo) Create(d *entity.Doctor) error {
	query := `
		INSERT INTO doctors (` + doctorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.FirstName, d.LastName, d.Specialty, d.Phone, d.Email, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

// GetByID obtiene un doctor por ID. Devuelve (nil, nil) si no existe.
func (r *DoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	return r.scanOne(`SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id)
}

// GetByEmail busca un doctor por email. Devuelve (nil, nil) si no existe.
func (r *DoctorRepo) GetByEmail(email string) (*entity.Doctor, error) {
	return r.scanOne(`SELECT `+doctorColumns+` FROM doctors WHERE email = $1`, email)
}

// List devuelve doctores paginados por apellido y nombre.
func (r *DoctorRepo) List(limit, offset int) ([]*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY last_name ASC, first_name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Doctor
	for rows.Next() {
		var d entity.Doctor
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Specialty, &d.Phone, &d.Email,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// Update sobrescribe todos los campos del doctor.
func (r *DoctorRepo) Update(d *entity.Doctor) error {
	query := `
		UPDATE doctors
		SET first_name = $2, last_name = $3, specialty = $4, phone = $5, email = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.FirstName, d.LastName, d.Specialty, d.Phone, d.Email, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update doctor: %w", err)
	}
	return nil
}

// Delete elimina un doctor. Devuelve false si no existía.
func (r *DoctorRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete doctor: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DoctorRepo) scanOne(query string, args ...any) (*entity.Doctor, error) {
	var d entity.Doctor
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&d.ID, &d.FirstName, &d.LastName, &d.Specialty, &d.Phone, &d.Email, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return &d, nil
}
