package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

var _ repository.MedicationRepository = (*MedicationRepo)(nil)

// MedicationRepo implementación de MedicationRepository sobre PostgreSQL
// (usable con pool o tx).
type MedicationRepo struct {
	q Querier
}

// NewMedicationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicationRepository(q Querier) *MedicationRepo {
	return &MedicationRepo{q: q}
}

const medicationColumns = `id, name, dosage, description, stock, expiration_date, created_at, updated_at`

// Create persiste un medicamento nuevo.
func (r *MedicationRepo) Create(m *entity.Medication) error {
	query := `
		INSERT INTO medications (` + medicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Dosage, m.Description, m.Stock, m.ExpirationDate, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert medication: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID. Devuelve (nil, nil) si no existe.
func (r *MedicationRepo) GetByID(id string) (*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el medicamento y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *MedicationRepo) GetForUpdate(id string) (*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// List devuelve medicamentos paginados por nombre.
func (r *MedicationRepo) List(limit, offset int) ([]*entity.Medication, error) {
	query := `
		SELECT ` + medicationColumns + `
		FROM medications ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	var out []*entity.Medication
	for rows.Next() {
		var m entity.Medication
		if err := rows.Scan(&m.ID, &m.Name, &m.Dosage, &m.Description, &m.Stock, &m.ExpirationDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Update sobrescribe todos los campos del medicamento.
func (r *MedicationRepo) Update(m *entity.Medication) error {
	query := `
		UPDATE medications
		SET name = $2, dosage = $3, description = $4, stock = $5, expiration_date = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Dosage, m.Description, m.Stock, m.ExpirationDate, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medication: %w", err)
	}
	return nil
}

// UpdateStock escribe el contador de stock. Se asume que el caller ya
// bloqueó la fila con GetForUpdate dentro de la misma transacción.
func (r *MedicationRepo) UpdateStock(id string, stock int) error {
	query := `UPDATE medications SET stock = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update medication stock: %w", err)
	}
	return nil
}

// Delete elimina un medicamento. Devuelve false si no existía.
func (r *MedicationRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete medication: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *MedicationRepo) scanOne(query string, args ...any) (*entity.Medication, error) {
	var m entity.Medication
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.Name, &m.Dosage, &m.Description, &m.Stock, &m.ExpirationDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medication: %w", err)
	}
	return &m, nil
}
