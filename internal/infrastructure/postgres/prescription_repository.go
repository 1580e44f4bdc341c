package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

var _ repository.PrescriptionRepository = (*PrescriptionRepo)(nil)

// PrescriptionRepo implementación de PrescriptionRepository sobre PostgreSQL:
// cabecera en prescriptions más la relación muchos-a-muchos en
// prescription_medications. Usable con pool o tx; las escrituras de
// emisión siempre llegan atadas a la tx del TxRunner.
type PrescriptionRepo struct {
	q Querier
}

// NewPrescriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPrescriptionRepository(q Querier) *PrescriptionRepo {
	return &PrescriptionRepo{q: q}
}

// Create inserta la cabecera y las filas de unión.
func (r *PrescriptionRepo) Create(p *entity.Prescription) error {
	query := `
		INSERT INTO prescriptions (id, patient_id, doctor_id, prescription_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PatientID, p.DoctorID, p.PrescriptionDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prescription: %w", err)
	}
	return r.insertMedications(p.ID, p.MedicationIDs)
}

// GetByID obtiene cabecera + IDs de medicamentos. Devuelve (nil, nil) si no existe.
func (r *PrescriptionRepo) GetByID(id string) (*entity.Prescription, error) {
	query := `
		SELECT id, patient_id, doctor_id, prescription_date, created_at, updated_at
		FROM prescriptions WHERE id = $1`
	var p entity.Prescription
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.PatientID, &p.DoctorID, &p.PrescriptionDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	medIDs, err := r.medicationIDs(p.ID)
	if err != nil {
		return nil, err
	}
	p.MedicationIDs = medIDs
	return &p, nil
}

// List devuelve recetas paginadas (más recientes primero), cada una con sus
// IDs de medicamentos.
func (r *PrescriptionRepo) List(limit, offset int) ([]*entity.Prescription, error) {
	query := `
		SELECT id, patient_id, doctor_id, prescription_date, created_at, updated_at
		FROM prescriptions ORDER BY prescription_date DESC, created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	defer rows.Close()

	var out []*entity.Prescription
	for rows.Next() {
		var p entity.Prescription
		if err := rows.Scan(&p.ID, &p.PatientID, &p.DoctorID, &p.PrescriptionDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan prescription: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range out {
		medIDs, err := r.medicationIDs(p.ID)
		if err != nil {
			return nil, err
		}
		p.MedicationIDs = medIDs
	}
	return out, nil
}

// Update sobrescribe la cabecera y reemplaza las filas de unión.
func (r *PrescriptionRepo) Update(p *entity.Prescription) error {
	query := `
		UPDATE prescriptions
		SET patient_id = $2, doctor_id = $3, prescription_date = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PatientID, p.DoctorID, p.PrescriptionDate, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update prescription: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `DELETE FROM prescription_medications WHERE prescription_id = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("clear prescription medications: %w", err)
	}
	return r.insertMedications(p.ID, p.MedicationIDs)
}

// Delete elimina la receta y sus filas de unión. Devuelve false si no existía.
func (r *PrescriptionRepo) Delete(id string) (bool, error) {
	_, err := r.q.Exec(context.Background(), `DELETE FROM prescription_medications WHERE prescription_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete prescription medications: %w", err)
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM prescriptions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete prescription: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PrescriptionRepo) insertMedications(prescriptionID string, medicationIDs []string) error {
	for _, medID := range medicationIDs {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO prescription_medications (prescription_id, medication_id) VALUES ($1, $2)`,
			prescriptionID, medID,
		)
		if err != nil {
			return fmt.Errorf("insert prescription medication: %w", err)
		}
	}
	return nil
}

func (r *PrescriptionRepo) medicationIDs(prescriptionID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT medication_id FROM prescription_medications WHERE prescription_id = $1 ORDER BY medication_id`,
		prescriptionID,
	)
	if err != nil {
		return nil, fmt.Errorf("get prescription medications: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan medication id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
