package pharmacy

import (
	"context"

	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger de
// stock y la emisión de recetas: si fn retorna error se hace rollback y
// ninguna escritura sobrevive.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		medRepo repository.MedicationRepository,
		prescriptionRepo repository.PrescriptionRepository,
	) error) error
}

// PrescriptionPDFGenerator genera la versión imprimible de una receta
// (entrega en farmacia).
type PrescriptionPDFGenerator interface {
	GeneratePrescriptionPDF(
		ctx context.Context,
		prescription *entity.Prescription,
		patient *entity.Patient,
		doctor *entity.Doctor,
		medications []*entity.Medication,
	) ([]byte, error)
}
