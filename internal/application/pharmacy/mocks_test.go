package pharmacy_test

import (
	"context"
	"sort"
	"sync"

	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria. El store comparte los datos entre repos y TxRunner;
// el TxRunner emula la semántica transaccional de PostgreSQL: un mutex
// global serializa las transacciones (equivalente al bloqueo de fila
// FOR UPDATE para estos tests) y un snapshot revierte todo si fn falla.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu            sync.Mutex
	medications   map[string]entity.Medication
	prescriptions map[string]entity.Prescription
	patients      map[string]entity.Patient
	doctors       map[string]entity.Doctor
}

func newMemStore() *memStore {
	return &memStore{
		medications:   make(map[string]entity.Medication),
		prescriptions: make(map[string]entity.Prescription),
		patients:      make(map[string]entity.Patient),
		doctors:       make(map[string]entity.Doctor),
	}
}

func (s *memStore) putMedication(m entity.Medication)     { s.medications[m.ID] = m }
func (s *memStore) putPatient(p entity.Patient)           { s.patients[p.ID] = p }
func (s *memStore) putDoctor(d entity.Doctor)             { s.doctors[d.ID] = d }
func (s *memStore) putPrescription(p entity.Prescription) { s.prescriptions[p.ID] = p }

// stockOf lee el stock actual de un medicamento (solo para aserciones).
func (s *memStore) stockOf(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.medications[id].Stock
}

// ── MedicationRepository ──────────────────────────────────────────────────────

type memMedicationRepo struct {
	store *memStore
}

var _ repository.MedicationRepository = (*memMedicationRepo)(nil)

func (r *memMedicationRepo) Create(m *entity.Medication) error {
	r.store.medications[m.ID] = *m
	return nil
}

func (r *memMedicationRepo) GetByID(id string) (*entity.Medication, error) {
	m, ok := r.store.medications[id]
	if !ok {
		return nil, nil
	}
	cp := m
	return &cp, nil
}

// GetForUpdate en memoria equivale a GetByID: el mutex del TxRunner ya
// serializa las transacciones completas.
func (r *memMedicationRepo) GetForUpdate(id string) (*entity.Medication, error) {
	return r.GetByID(id)
}

func (r *memMedicationRepo) List(limit, offset int) ([]*entity.Medication, error) {
	ids := make([]string, 0, len(r.store.medications))
	for id := range r.store.medications {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []*entity.Medication
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		m := r.store.medications[id]
		out = append(out, &m)
	}
	return out, nil
}

func (r *memMedicationRepo) Update(m *entity.Medication) error {
	r.store.medications[m.ID] = *m
	return nil
}

func (r *memMedicationRepo) UpdateStock(id string, stock int) error {
	m := r.store.medications[id]
	m.Stock = stock
	r.store.medications[id] = m
	return nil
}

func (r *memMedicationRepo) Delete(id string) (bool, error) {
	if _, ok := r.store.medications[id]; !ok {
		return false, nil
	}
	delete(r.store.medications, id)
	return true, nil
}

// ── PrescriptionRepository ────────────────────────────────────────────────────

type memPrescriptionRepo struct {
	store *memStore
}

var _ repository.PrescriptionRepository = (*memPrescriptionRepo)(nil)

func (r *memPrescriptionRepo) Create(p *entity.Prescription) error {
	r.store.prescriptions[p.ID] = *p
	return nil
}

func (r *memPrescriptionRepo) GetByID(id string) (*entity.Prescription, error) {
	p, ok := r.store.prescriptions[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *memPrescriptionRepo) List(limit, offset int) ([]*entity.Prescription, error) {
	ids := make([]string, 0, len(r.store.prescriptions))
	for id := range r.store.prescriptions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []*entity.Prescription
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		p := r.store.prescriptions[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *memPrescriptionRepo) Update(p *entity.Prescription) error {
	if _, ok := r.store.prescriptions[p.ID]; !ok {
		return nil
	}
	r.store.prescriptions[p.ID] = *p
	return nil
}

func (r *memPrescriptionRepo) Delete(id string) (bool, error) {
	if _, ok := r.store.prescriptions[id]; !ok {
		return false, nil
	}
	delete(r.store.prescriptions, id)
	return true, nil
}

// ── PatientRepository / DoctorRepository (solo lo que usa pharmacy) ───────────

type memPatientRepo struct {
	store *memStore
}

var _ repository.PatientRepository = (*memPatientRepo)(nil)

func (r *memPatientRepo) Create(p *entity.Patient) error {
	r.store.patients[p.ID] = *p
	return nil
}

func (r *memPatientRepo) GetByID(id string) (*entity.Patient, error) {
	p, ok := r.store.patients[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *memPatientRepo) List(limit, offset int) ([]*entity.Patient, error) { return nil, nil }
func (r *memPatientRepo) Update(p *entity.Patient) error                    { return nil }
func (r *memPatientRepo) Delete(id string) (bool, error)                    { return false, nil }
func (r *memPatientRepo) CountByRoom(roomID string) (int, error)            { return 0, nil }

type memDoctorRepo struct {
	store *memStore
}

var _ repository.DoctorRepository = (*memDoctorRepo)(nil)

func (r *memDoctorRepo) Create(d *entity.Doctor) error {
	r.store.doctors[d.ID] = *d
	return nil
}

func (r *memDoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	d, ok := r.store.doctors[id]
	if !ok {
		return nil, nil
	}
	cp := d
	return &cp, nil
}

func (r *memDoctorRepo) GetByEmail(email string) (*entity.Doctor, error) {
	for _, d := range r.store.doctors {
		if d.Email == email {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memDoctorRepo) List(limit, offset int) ([]*entity.Doctor, error) { return nil, nil }
func (r *memDoctorRepo) Update(d *entity.Doctor) error                    { return nil }
func (r *memDoctorRepo) Delete(id string) (bool, error)                   { return false, nil }

// ── TxRunner ──────────────────────────────────────────────────────────────────

type memTxRunner struct {
	store *memStore
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	medRepo repository.MedicationRepository,
	prescriptionRepo repository.PrescriptionRepository,
) error) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()

	// Snapshot para rollback
	medsBackup := make(map[string]entity.Medication, len(tx.store.medications))
	for k, v := range tx.store.medications {
		medsBackup[k] = v
	}
	presBackup := make(map[string]entity.Prescription, len(tx.store.prescriptions))
	for k, v := range tx.store.prescriptions {
		presBackup[k] = v
	}

	err := fn(&memMedicationRepo{store: tx.store}, &memPrescriptionRepo{store: tx.store})
	if err != nil {
		tx.store.medications = medsBackup
		tx.store.prescriptions = presBackup
	}
	return err
}
