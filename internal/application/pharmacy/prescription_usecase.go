package pharmacy

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// PrescriptionUseCase emite recetas manteniendo consistente el ledger de
// stock: resolver referencias, verificar stock de TODOS los medicamentos,
// descontar 1 unidad por medicamento y persistir la receta, todo en una
// sola transacción. Si cualquier paso falla se hace rollback completo:
// ningún descuento parcial sobrevive.
type PrescriptionUseCase struct {
	txRunner         TxRunner
	prescriptionRepo repository.PrescriptionRepository
	medicationRepo   repository.MedicationRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
}

// NewPrescriptionUseCase construye el caso de uso.
func NewPrescriptionUseCase(
	txRunner TxRunner,
	prescriptionRepo repository.PrescriptionRepository,
	medicationRepo repository.MedicationRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) *PrescriptionUseCase {
	return &PrescriptionUseCase{
		txRunner:         txRunner,
		prescriptionRepo: prescriptionRepo,
		medicationRepo:   medicationRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
	}
}

// Create emite una receta. Secuencia:
//  1. Validar el conjunto de medicamentos (no vacío, sin duplicados).
//  2. Resolver paciente y médico (solo lectura, fuera de la tx).
//  3. En una transacción: bloquear cada fila de medicamento FOR UPDATE en
//     orden estable (IDs ordenados, evita deadlocks entre recetas
//     concurrentes), completar la pasada de verificación stock > 0 sobre
//     TODOS los medicamentos y solo entonces descontar 1 unidad a cada uno
//     y persistir la receta.
//
// Cualquier fallo aborta la operación completa sin efectos persistidos.
func (uc *PrescriptionUseCase) Create(ctx context.Context, in dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	medIDs, err := normalizeMedicationSet(in.MedicationIDs)
	if err != nil {
		return nil, err
	}
	if in.PrescriptionDate.IsZero() {
		return nil, &domain.ValidationError{Field: "prescription_date", Reason: "es requerida"}
	}
	if err := uc.resolveReferences(in.PatientID, in.DoctorID); err != nil {
		return nil, err
	}

	now := time.Now()
	prescription := &entity.Prescription{
		ID:               uuid.New().String(),
		PatientID:        in.PatientID,
		DoctorID:         in.DoctorID,
		MedicationIDs:    medIDs,
		PrescriptionDate: in.PrescriptionDate.Time,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.txRunner.Run(ctx, func(medRepo repository.MedicationRepository, prescriptionRepo repository.PrescriptionRepository) error {
		// Pasada 1: bloquear y verificar. No se descuenta nada hasta que
		// todos los medicamentos pasaron la verificación.
		meds := make([]*entity.Medication, 0, len(medIDs))
		for _, id := range medIDs {
			med, err := medRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if med == nil {
				return &domain.NotFoundError{Resource: "medication", ID: id}
			}
			if med.Stock <= 0 {
				return &domain.StockError{MedicationID: med.ID, Name: med.Name, Requested: 1, Available: med.Stock}
			}
			meds = append(meds, med)
		}
		// Pasada 2: descontar exactamente 1 unidad por medicamento.
		for _, med := range meds {
			if err := medRepo.UpdateStock(med.ID, med.Stock-1); err != nil {
				return err
			}
		}
		return prescriptionRepo.Create(prescription)
	})
	if err != nil {
		return nil, err
	}
	return toPrescriptionResponse(prescription), nil
}

// GetByID obtiene una receta por ID. Solo lectura, sin efectos.
func (uc *PrescriptionUseCase) GetByID(id string) (*dto.PrescriptionResponse, error) {
	p, err := uc.prescriptionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.NotFoundError{Resource: "prescription", ID: id}
	}
	return toPrescriptionResponse(p), nil
}

// List devuelve recetas paginadas.
func (uc *PrescriptionUseCase) List(limit, offset int) (*dto.PrescriptionListResponse, error) {
	ps, err := uc.prescriptionRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PrescriptionListResponse{
		Total:         len(ps),
		Prescriptions: make([]*dto.PrescriptionResponse, 0, len(ps)),
	}
	for _, p := range ps {
		out.Prescriptions = append(out.Prescriptions, toPrescriptionResponse(p))
	}
	return out, nil
}

// Update re-resuelve las referencias y sobrescribe los campos de la receta.
// Política: el update NO reajusta stock (ni devuelve unidades de los
// medicamentos retirados ni descuenta para los añadidos); el descuento
// pertenece exclusivamente a la emisión.
func (uc *PrescriptionUseCase) Update(ctx context.Context, id string, in dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	medIDs, err := normalizeMedicationSet(in.MedicationIDs)
	if err != nil {
		return nil, err
	}
	existing, err := uc.prescriptionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &domain.NotFoundError{Resource: "prescription", ID: id}
	}
	if err := uc.resolveReferences(in.PatientID, in.DoctorID); err != nil {
		return nil, err
	}
	for _, medID := range medIDs {
		med, err := uc.medicationRepo.GetByID(medID)
		if err != nil {
			return nil, err
		}
		if med == nil {
			return nil, &domain.NotFoundError{Resource: "medication", ID: medID}
		}
	}

	existing.PatientID = in.PatientID
	existing.DoctorID = in.DoctorID
	existing.MedicationIDs = medIDs
	if !in.PrescriptionDate.IsZero() {
		existing.PrescriptionDate = in.PrescriptionDate.Time
	}
	existing.UpdatedAt = time.Now()

	// Cabecera y filas de unión se reemplazan en una sola transacción.
	err = uc.txRunner.Run(ctx, func(_ repository.MedicationRepository, prescriptionRepo repository.PrescriptionRepository) error {
		return prescriptionRepo.Update(existing)
	})
	if err != nil {
		return nil, err
	}
	return toPrescriptionResponse(existing), nil
}

// Delete elimina una receta por ID. No restaura stock: la receta emitida ya
// consumió sus unidades.
func (uc *PrescriptionUseCase) Delete(id string) error {
	deleted, err := uc.prescriptionRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "prescription", ID: id}
	}
	return nil
}

// resolveReferences verifica que paciente y médico existan.
func (uc *PrescriptionUseCase) resolveReferences(patientID, doctorID string) error {
	if patientID == "" {
		return &domain.ValidationError{Field: "patient_id", Reason: "es requerido"}
	}
	if doctorID == "" {
		return &domain.ValidationError{Field: "doctor_id", Reason: "es requerido"}
	}
	patient, err := uc.patientRepo.GetByID(patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return &domain.NotFoundError{Resource: "patient", ID: patientID}
	}
	doctor, err := uc.doctorRepo.GetByID(doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return &domain.NotFoundError{Resource: "doctor", ID: doctorID}
	}
	return nil
}

// normalizeMedicationSet valida que el conjunto sea no vacío y sin
// duplicados, y lo devuelve ordenado (orden estable de bloqueo).
func normalizeMedicationSet(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, &domain.ValidationError{Field: "medication_ids", Reason: "debe contener al menos un medicamento"}
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, &domain.ValidationError{Field: "medication_ids", Reason: "contiene un ID vacío"}
		}
		if _, dup := seen[id]; dup {
			return nil, &domain.ValidationError{Field: "medication_ids", Reason: "contiene IDs duplicados: " + id}
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func toPrescriptionResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	return &dto.PrescriptionResponse{
		ID:               p.ID,
		PatientID:        p.PatientID,
		DoctorID:         p.DoctorID,
		MedicationIDs:    p.MedicationIDs,
		PrescriptionDate: dto.NewDate(p.PrescriptionDate),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
