package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/application/usecase"
	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
)

func newRecordUC() (*usecase.MedicalRecordUseCase, *fakeRecordRepo) {
	records := newFakeRecordRepo()
	patients := newFakePatientRepo()
	patients.patients["p-1"] = entity.Patient{ID: "p-1", FirstName: "María", LastName: "González"}
	return usecase.NewMedicalRecordUseCase(records, patients), records
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestMedicalRecordCreate_Valido(t *testing.T) {
	uc, records := newRecordUC()

	out, err := uc.Create(dto.CreateMedicalRecordRequest{
		PatientID: "p-1",
		Diagnosis: "Faringitis aguda",
		Treatment: "Amoxicilina 500mg cada 8 horas",
		Date:      dto.NewDate(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Len(t, records.records, 1)
}

func TestMedicalRecordCreate_SinFecha_UsaAhora(t *testing.T) {
	uc, _ := newRecordUC()

	out, err := uc.Create(dto.CreateMedicalRecordRequest{
		PatientID: "p-1",
		Diagnosis: "Control rutinario",
	})
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), out.Date.Time, time.Minute,
		"sin fecha explícita debe usarse la fecha actual")
}

func TestMedicalRecordCreate_SinDiagnostico_Rechazado(t *testing.T) {
	uc, _ := newRecordUC()

	_, err := uc.Create(dto.CreateMedicalRecordRequest{PatientID: "p-1"})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "diagnosis", verr.Field)
}

func TestMedicalRecordCreate_PacienteInexistente(t *testing.T) {
	uc, records := newRecordUC()

	_, err := uc.Create(dto.CreateMedicalRecordRequest{
		PatientID: "p-404",
		Diagnosis: "Faringitis",
	})
	require.Error(t, err)

	var nferr *domain.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "patient", nferr.Resource)
	assert.Empty(t, records.records)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial por paciente
// ──────────────────────────────────────────────────────────────────────────────

func TestMedicalRecordListByPatient_OrdenFechaDescendente(t *testing.T) {
	uc, _ := newRecordUC()

	fechas := []time.Time{
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, f := range fechas {
		_, err := uc.Create(dto.CreateMedicalRecordRequest{
			PatientID: "p-1",
			Diagnosis: "Control",
			Date:      dto.NewDate(f),
		})
		require.NoError(t, err)
	}

	out, err := uc.ListByPatient("p-1", 20, 0)
	require.NoError(t, err)
	require.Equal(t, 3, out.Total)

	assert.Equal(t, time.March, out.Records[0].Date.Month(), "la entrada más reciente va primero")
	assert.Equal(t, time.January, out.Records[2].Date.Month())
}

func TestMedicalRecordListByPatient_PacienteInexistente(t *testing.T) {
	uc, _ := newRecordUC()

	_, err := uc.ListByPatient("p-404", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
