package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/healthflow-api/internal/application/pharmacy"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// Ensure TxRunner implements pharmacy.TxRunner.
var _ pharmacy.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la
// frontera transaccional del ledger de stock y de la emisión de recetas:
// las filas bloqueadas con SELECT FOR UPDATE quedan retenidas hasta el
// Commit/Rollback, de modo que verificación y descuento son atómicos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Si fn retorna error ninguna escritura sobrevive.
func (r *TxRunner) Run(ctx context.Context, fn func(
	medRepo repository.MedicationRepository,
	prescriptionRepo repository.PrescriptionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	medRepo := NewMedicationRepository(tx)
	prescriptionRepo := NewPrescriptionRepository(tx)

	if err := fn(medRepo, prescriptionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
