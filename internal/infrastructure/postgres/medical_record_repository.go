package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

var _ repository.MedicalRecordRepository = (*MedicalRecordRepo)(nil)

// MedicalRecordRepo implementación de MedicalRecordRepository sobre PostgreSQL.
type MedicalRecordRepo struct {
	q Querier
}

func NewMedicalRecordRepository(q Querier) *MedicalRecordRepo {
	return &MedicalRecordRepo{q: q}
}

const medicalRecordColumns = `id, patient_id, diagnosis, treatment, record_date, created_at, updated_at`

// Create persiste un registro clínico nuevo.
func (r *MedicalRecordRepo) Create(rec *entity.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (` + medicalRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.PatientID, rec.Diagnosis, rec.Treatment, rec.Date, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert medical record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro clínico por ID. Devuelve (nil, nil) si no existe.
func (r *MedicalRecordRepo) GetByID(id string) (*entity.MedicalRecord, error) {
	query := `SELECT ` + medicalRecordColumns + ` FROM medical_records WHERE id = $1`
	var rec entity.MedicalRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.PatientID, &rec.Diagnosis, &rec.Treatment, &rec.Date,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medical record: %w", err)
	}
	return &rec, nil
}

// ListByPatient devuelve el historial de un paciente, del más reciente al más antiguo.
func (r *MedicalRecordRepo) ListByPatient(patientID string, limit, offset int) ([]*entity.MedicalRecord, error) {
	query := `
		SELECT ` + medicalRecordColumns + `
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY record_date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, patientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer rows.Close()

	var out []*entity.MedicalRecord
	for rows.Next() {
		var rec entity.MedicalRecord
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.Diagnosis, &rec.Treatment, &rec.Date,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medical record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Update sobrescribe todos los campos del registro clínico.
func (r *MedicalRecordRepo) Update(rec *entity.MedicalRecord) error {
	query := `
		UPDATE medical_records
		SET patient_id = $2, diagnosis = $3, treatment = $4, record_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.PatientID, rec.Diagnosis, rec.Treatment, rec.Date, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medical record: %w", err)
	}
	return nil
}

// Delete elimina un registro clínico. Devuelve false si no existía.
func (r *MedicalRecordRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete medical record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
