package pharmacy_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/application/pharmacy"
	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newPrescriptionUC(store *memStore) *pharmacy.PrescriptionUseCase {
	return pharmacy.NewPrescriptionUseCase(
		&memTxRunner{store: store},
		&memPrescriptionRepo{store: store},
		&memMedicationRepo{store: store},
		&memPatientRepo{store: store},
		&memDoctorRepo{store: store},
	)
}

// seedReferences registra un paciente y un médico válidos.
func seedReferences(store *memStore) (patientID, doctorID string) {
	store.putPatient(entity.Patient{
		ID: "p1", FirstName: "María", LastName: "González",
		DateOfBirth: time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:      "Female", Phone: "3104567890",
	})
	store.putDoctor(entity.Doctor{
		ID: "d1", FirstName: "Carlos", LastName: "Ramírez",
		Specialty: "Medicina Interna", Email: "c.ramirez@test.local",
	})
	return "p1", "d1"
}

func createRequest(patientID, doctorID string, medIDs ...string) dto.CreatePrescriptionRequest {
	return dto.CreatePrescriptionRequest{
		PatientID:        patientID,
		DoctorID:         doctorID,
		MedicationIDs:    medIDs,
		PrescriptionDate: dto.NewDate(time.Now()),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Emisión: camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestPrescriptionCreate_DescuentaUnaUnidadPorMedicamento(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 3)
	seedMedication(store, "mB", 7)
	uc := newPrescriptionUC(store)

	out, err := uc.Create(context.Background(), createRequest(patientID, doctorID, "mA", "mB"))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.ElementsMatch(t, []string{"mA", "mB"}, out.MedicationIDs)
	assert.Equal(t, 2, store.stockOf("mA"), "cada medicamento pierde exactamente 1 unidad")
	assert.Equal(t, 6, store.stockOf("mB"))

	// La receta quedó persistida
	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, patientID, got.PatientID)
	assert.Equal(t, doctorID, got.DoctorID)
}

func TestPrescriptionCreate_StockEnUno_QuedaEnCero(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 1)
	uc := newPrescriptionUC(store)

	_, err := uc.Create(context.Background(), createRequest(patientID, doctorID, "mA"))
	require.NoError(t, err)
	assert.Equal(t, 0, store.stockOf("mA"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Emisión: rechazos
// ──────────────────────────────────────────────────────────────────────────────

func TestPrescriptionCreate_StockCero_Rechazada(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 0)
	uc := newPrescriptionUC(store)

	_, err := uc.Create(context.Background(), createRequest(patientID, doctorID, "mA"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, store.stockOf("mA"))
}

// El caso central de atomicidad: {A con stock, B sin stock} no debe
// descontar nada de A aunque A se verifique primero.
func TestPrescriptionCreate_FalloParcial_NoDescuentaNada(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 3)
	seedMedication(store, "mB", 0)
	uc := newPrescriptionUC(store)

	_, err := uc.Create(context.Background(), createRequest(patientID, doctorID, "mA", "mB"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "mB", stockErr.MedicationID, "el error identifica al medicamento sin stock")

	assert.Equal(t, 3, store.stockOf("mA"), "el medicamento con stock no debe verse afectado")
	assert.Equal(t, 0, store.stockOf("mB"))

	// Y la receta no existe
	list, err := uc.List(10, 0)
	require.NoError(t, err)
	assert.Zero(t, list.Total, "no debe persistirse ninguna receta")
}

func TestPrescriptionCreate_SinMedicamentos_Rechazada(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	uc := newPrescriptionUC(store)

	_, err := uc.Create(context.Background(), createRequest(patientID, doctorID))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrescriptionCreate_MedicamentosDuplicados_Rechazada(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 5)
	uc := newPrescriptionUC(store)

	_, err := uc.Create(context.Background(), createRequest(patientID, doctorID, "mA", "mA"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 5, store.stockOf("mA"))
}

func TestPrescriptionCreate_PacienteInexistente_Rechazada(t *testing.T) {
	store := newMemStore()
	_, doctorID := seedReferences(store)
	seedMedication(store, "mA", 5)
	uc := newPrescriptionUC(store)

	_, err := uc.Create(context.Background(), createRequest("fantasma", doctorID, "mA"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "patient", nfErr.Resource)
	assert.Equal(t, 5, store.stockOf("mA"), "sin emisión no hay descuento")
}

func TestPrescriptionCreate_MedicoInexistente_Rechazada(t *testing.T) {
	store := newMemStore()
	patientID, _ := seedReferences(store)
	seedMedication(store, "mA", 5)
	uc := newPrescriptionUC(store)

	_, err := uc.Create(context.Background(), createRequest(patientID, "fantasma", "mA"))
	require.Error(t, err)

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "doctor", nfErr.Resource)
}

func TestPrescriptionCreate_MedicamentoInexistente_Rechazada(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 5)
	uc := newPrescriptionUC(store)

	_, err := uc.Create(context.Background(), createRequest(patientID, doctorID, "mA", "fantasma"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 5, store.stockOf("mA"), "el rollback revierte cualquier descuento parcial")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos recetas compiten por la última unidad
// ──────────────────────────────────────────────────────────────────────────────

func TestPrescriptionCreate_Concurrente_UltimaUnidad(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 1)
	uc := newPrescriptionUC(store)

	const n = 2
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(context.Background(), createRequest(patientID, doctorID, "mA"))
		}(i)
	}
	wg.Wait()

	var okCount, stockErrCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, domain.ErrInsufficientStock):
			stockErrCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una emisión debe ganar la última unidad")
	assert.Equal(t, 1, stockErrCount, "la otra debe rechazarse por stock insuficiente")
	assert.Equal(t, 0, store.stockOf("mA"), "el stock nunca baja de cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y Delete: políticas de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestPrescriptionUpdate_NoReajustaStock(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 5)
	seedMedication(store, "mB", 5)
	uc := newPrescriptionUC(store)

	created, err := uc.Create(context.Background(), createRequest(patientID, doctorID, "mA"))
	require.NoError(t, err)
	require.Equal(t, 4, store.stockOf("mA"))

	// Cambiar la receta de mA a mB no devuelve la unidad de mA ni
	// descuenta de mB.
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdatePrescriptionRequest{
		PatientID:        patientID,
		DoctorID:         doctorID,
		MedicationIDs:    []string{"mB"},
		PrescriptionDate: dto.NewDate(time.Now()),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"mB"}, updated.MedicationIDs)

	assert.Equal(t, 4, store.stockOf("mA"), "el update no devuelve unidades")
	assert.Equal(t, 5, store.stockOf("mB"), "el update no descuenta unidades")
}

func TestPrescriptionUpdate_NoExiste_NotFound(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 5)
	uc := newPrescriptionUC(store)

	_, err := uc.Update(context.Background(), "fantasma", dto.UpdatePrescriptionRequest{
		PatientID:     patientID,
		DoctorID:      doctorID,
		MedicationIDs: []string{"mA"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrescriptionDelete_NoRestauraStock(t *testing.T) {
	store := newMemStore()
	patientID, doctorID := seedReferences(store)
	seedMedication(store, "mA", 5)
	uc := newPrescriptionUC(store)

	created, err := uc.Create(context.Background(), createRequest(patientID, doctorID, "mA"))
	require.NoError(t, err)
	require.Equal(t, 4, store.stockOf("mA"))

	require.NoError(t, uc.Delete(created.ID))

	assert.Equal(t, 4, store.stockOf("mA"), "eliminar la receta no devuelve la unidad consumida")

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrescriptionDelete_NoExiste_NotFound(t *testing.T) {
	uc := newPrescriptionUC(newMemStore())
	assert.ErrorIs(t, uc.Delete("fantasma"), domain.ErrNotFound)
}
