package pharmacy

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// MedicationUseCase es el ledger de medicamentos: dueño único de los
// contadores de stock. Todo cambio de stock pasa por ReduceStock /
// IncreaseStock dentro de una transacción con bloqueo de fila
// (SELECT FOR UPDATE), de modo que llamadas concurrentes sobre el mismo
// medicamento quedan linealizadas y el stock nunca baja de cero.
type MedicationUseCase struct {
	repo     repository.MedicationRepository
	txRunner TxRunner
}

// NewMedicationUseCase construye el caso de uso.
func NewMedicationUseCase(repo repository.MedicationRepository, txRunner TxRunner) *MedicationUseCase {
	return &MedicationUseCase{repo: repo, txRunner: txRunner}
}

// Create valida y persiste un medicamento nuevo. Rechaza en bloque si algún
// campo es inválido (sin aplicación parcial).
func (uc *MedicationUseCase) Create(in dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	now := time.Now()
	med := &entity.Medication{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Dosage:         in.Dosage,
		Description:    in.Description,
		Stock:          in.Stock,
		ExpirationDate: in.ExpirationDate.Time,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := validateMedication(med, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(med); err != nil {
		return nil, err
	}
	return toMedicationResponse(med), nil
}

// GetByID obtiene un medicamento por ID. Retorna NotFoundError si no existe.
func (uc *MedicationUseCase) GetByID(id string) (*dto.MedicationResponse, error) {
	med, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, &domain.NotFoundError{Resource: "medication", ID: id}
	}
	return toMedicationResponse(med), nil
}

// List devuelve medicamentos paginados.
func (uc *MedicationUseCase) List(limit, offset int) (*dto.MedicationListResponse, error) {
	meds, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MedicationListResponse{
		Total:       len(meds),
		Medications: make([]*dto.MedicationResponse, 0, len(meds)),
	}
	for _, m := range meds {
		out.Medications = append(out.Medications, toMedicationResponse(m))
	}
	return out, nil
}

// Update revalida y sobrescribe todos los campos del medicamento, incluido
// Stock (ajuste administrativo directo; los descuentos por receta van por
// ReduceStock).
func (uc *MedicationUseCase) Update(id string, in dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	med, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, &domain.NotFoundError{Resource: "medication", ID: id}
	}
	now := time.Now()
	med.Name = in.Name
	med.Dosage = in.Dosage
	med.Description = in.Description
	med.Stock = in.Stock
	med.ExpirationDate = in.ExpirationDate.Time
	med.UpdatedAt = now
	if err := validateMedication(med, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(med); err != nil {
		return nil, err
	}
	return toMedicationResponse(med), nil
}

// Delete elimina un medicamento por ID.
func (uc *MedicationUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "medication", ID: id}
	}
	return nil
}

// ReduceStock descuenta amount unidades de stock de forma atómica.
// Bloquea la fila (SELECT FOR UPDATE), verifica stock suficiente y escribe
// el nuevo contador en la misma transacción: no hay lost update bajo
// llamadas concurrentes sobre el mismo medicamento.
func (uc *MedicationUseCase) ReduceStock(ctx context.Context, id string, amount int) error {
	if amount <= 0 {
		return &domain.ValidationError{Field: "amount", Reason: "debe ser mayor que cero"}
	}
	return uc.txRunner.Run(ctx, func(medRepo repository.MedicationRepository, _ repository.PrescriptionRepository) error {
		med, err := medRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if med == nil {
			return &domain.NotFoundError{Resource: "medication", ID: id}
		}
		if med.Stock < amount {
			return &domain.StockError{MedicationID: med.ID, Name: med.Name, Requested: amount, Available: med.Stock}
		}
		return medRepo.UpdateStock(id, med.Stock-amount)
	})
}

// IncreaseStock suma amount unidades de stock (sin tope superior), también
// bajo bloqueo de fila para no perder actualizaciones concurrentes.
func (uc *MedicationUseCase) IncreaseStock(ctx context.Context, id string, amount int) error {
	if amount <= 0 {
		return &domain.ValidationError{Field: "amount", Reason: "debe ser mayor que cero"}
	}
	return uc.txRunner.Run(ctx, func(medRepo repository.MedicationRepository, _ repository.PrescriptionRepository) error {
		med, err := medRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if med == nil {
			return &domain.NotFoundError{Resource: "medication", ID: id}
		}
		return medRepo.UpdateStock(id, med.Stock+amount)
	})
}

// AdjustStock enruta un delta al incremento o al descuento según el signo.
func (uc *MedicationUseCase) AdjustStock(ctx context.Context, id string, delta int) error {
	switch {
	case delta > 0:
		return uc.IncreaseStock(ctx, id, delta)
	case delta < 0:
		return uc.ReduceStock(ctx, id, -delta)
	default:
		return &domain.ValidationError{Field: "delta", Reason: "no puede ser cero"}
	}
}

// validateMedication aplica las reglas de buena formación: nombre y dosis
// no vacíos y dentro de los límites, stock no negativo y fecha de
// vencimiento estrictamente posterior a hoy.
func validateMedication(m *entity.Medication, now time.Time) error {
	if m.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "es requerido"}
	}
	if len(m.Name) > 100 {
		return &domain.ValidationError{Field: "name", Reason: "máximo 100 caracteres"}
	}
	if m.Dosage == "" {
		return &domain.ValidationError{Field: "dosage", Reason: "es requerido"}
	}
	if len(m.Dosage) > 50 {
		return &domain.ValidationError{Field: "dosage", Reason: "máximo 50 caracteres"}
	}
	if m.Stock < 0 {
		return &domain.ValidationError{Field: "stock", Reason: "no puede ser negativo"}
	}
	if m.ExpirationDate.IsZero() {
		return &domain.ValidationError{Field: "expiration_date", Reason: "es requerida"}
	}
	if !m.ExpirationDate.After(now) {
		return &domain.ValidationError{Field: "expiration_date", Reason: "debe ser una fecha futura"}
	}
	return nil
}

func toMedicationResponse(m *entity.Medication) *dto.MedicationResponse {
	return &dto.MedicationResponse{
		ID:             m.ID,
		Name:           m.Name,
		Dosage:         m.Dosage,
		Description:    m.Description,
		Stock:          m.Stock,
		ExpirationDate: dto.NewDate(m.ExpirationDate),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
