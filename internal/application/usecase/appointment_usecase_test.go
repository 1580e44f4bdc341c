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

func newAppointmentUC() (*usecase.AppointmentUseCase, *fakeAppointmentRepo) {
	appointments := newFakeAppointmentRepo()
	patients := newFakePatientRepo()
	doctors := newFakeDoctorRepo()
	patients.patients["p-1"] = entity.Patient{ID: "p-1", FirstName: "María", LastName: "González"}
	doctors.doctors["d-1"] = entity.Doctor{ID: "d-1", FirstName: "Carlos", LastName: "Ramírez"}
	return usecase.NewAppointmentUseCase(appointments, patients, doctors), appointments
}

func tomorrow() time.Time {
	return time.Now().AddDate(0, 0, 1).Truncate(time.Hour)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agendar
// ──────────────────────────────────────────────────────────────────────────────

func TestAppointmentCreate_EstadoPorDefecto(t *testing.T) {
	uc, _ := newAppointmentUC()

	out, err := uc.Create(dto.CreateAppointmentRequest{
		PatientID: "p-1",
		DoctorID:  "d-1",
		Date:      tomorrow(),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.AppointmentScheduled, out.Status, "sin estado explícito debe quedar SCHEDULED")
}

func TestAppointmentCreate_EstadoInvalido_Rechazado(t *testing.T) {
	uc, appointments := newAppointmentUC()

	_, err := uc.Create(dto.CreateAppointmentRequest{
		PatientID: "p-1",
		DoctorID:  "d-1",
		Date:      tomorrow(),
		Status:    "PENDING",
	})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
	assert.Empty(t, appointments.appointments, "no debe persistirse la cita")
}

func TestAppointmentCreate_SinFecha_Rechazada(t *testing.T) {
	uc, _ := newAppointmentUC()

	_, err := uc.Create(dto.CreateAppointmentRequest{
		PatientID: "p-1",
		DoctorID:  "d-1",
	})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestAppointmentCreate_PacienteInexistente(t *testing.T) {
	uc, _ := newAppointmentUC()

	_, err := uc.Create(dto.CreateAppointmentRequest{
		PatientID: "p-404",
		DoctorID:  "d-1",
		Date:      tomorrow(),
	})
	require.Error(t, err)

	var nferr *domain.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "patient", nferr.Resource)
}

func TestAppointmentCreate_MedicoInexistente(t *testing.T) {
	uc, _ := newAppointmentUC()

	_, err := uc.Create(dto.CreateAppointmentRequest{
		PatientID: "p-1",
		DoctorID:  "d-404",
		Date:      tomorrow(),
	})
	require.Error(t, err)

	var nferr *domain.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "doctor", nferr.Resource)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestAppointmentUpdate_Completar(t *testing.T) {
	uc, _ := newAppointmentUC()

	out, err := uc.Create(dto.CreateAppointmentRequest{
		PatientID: "p-1",
		DoctorID:  "d-1",
		Date:      tomorrow(),
	})
	require.NoError(t, err)

	updated, err := uc.Update(out.ID, dto.UpdateAppointmentRequest{Status: entity.AppointmentCompleted})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentCompleted, updated.Status)
	assert.Equal(t, out.Date.Unix(), updated.Date.Unix(), "sin fecha nueva la original se conserva")
}

func TestAppointmentUpdate_EstadoInvalido_Rechazado(t *testing.T) {
	uc, _ := newAppointmentUC()

	out, err := uc.Create(dto.CreateAppointmentRequest{
		PatientID: "p-1",
		DoctorID:  "d-1",
		Date:      tomorrow(),
	})
	require.NoError(t, err)

	_, err = uc.Update(out.ID, dto.UpdateAppointmentRequest{Status: "DONE"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAppointmentDelete_NoExiste(t *testing.T) {
	uc, _ := newAppointmentUC()

	err := uc.Delete("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
