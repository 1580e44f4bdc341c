package usecase_test

import (
	"sort"

	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// Repositorios en memoria para ejercitar los casos de uso clínicos sin base
// de datos. Guardan copias por valor, igual que las filas que devolvería pgx.

type fakePatientRepo struct {
	patients map[string]entity.Patient
}

var _ repository.PatientRepository = (*fakePatientRepo)(nil)

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[string]entity.Patient)}
}

func (r *fakePatientRepo) Create(p *entity.Patient) error {
	r.patients[p.ID] = *p
	return nil
}

func (r *fakePatientRepo) GetByID(id string) (*entity.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (r *fakePatientRepo) List(limit, offset int) ([]*entity.Patient, error) {
	ids := make([]string, 0, len(r.patients))
	for id := range r.patients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Patient, 0, len(ids))
	for _, id := range ids {
		p := r.patients[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakePatientRepo) Update(p *entity.Patient) error {
	r.patients[p.ID] = *p
	return nil
}

func (r *fakePatientRepo) Delete(id string) (bool, error) {
	if _, ok := r.patients[id]; !ok {
		return false, nil
	}
	delete(r.patients, id)
	return true, nil
}

func (r *fakePatientRepo) CountByRoom(roomID string) (int, error) {
	count := 0
	for _, p := range r.patients {
		if p.HospitalRoomID == roomID {
			count++
		}
	}
	return count, nil
}

type fakeRoomRepo struct {
	rooms map[string]entity.HospitalRoom
}

var _ repository.HospitalRoomRepository = (*fakeRoomRepo)(nil)

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]entity.HospitalRoom)}
}

func (r *fakeRoomRepo) Create(room *entity.HospitalRoom) error {
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) GetByID(id string) (*entity.HospitalRoom, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	out := room
	return &out, nil
}

func (r *fakeRoomRepo) List(limit, offset int) ([]*entity.HospitalRoom, error) {
	out := make([]*entity.HospitalRoom, 0, len(r.rooms))
	for id := range r.rooms {
		room := r.rooms[id]
		out = append(out, &room)
	}
	return out, nil
}

func (r *fakeRoomRepo) Update(room *entity.HospitalRoom) error {
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) Delete(id string) (bool, error) {
	if _, ok := r.rooms[id]; !ok {
		return false, nil
	}
	delete(r.rooms, id)
	return true, nil
}

type fakeDoctorRepo struct {
	doctors map[string]entity.Doctor
}

var _ repository.DoctorRepository = (*fakeDoctorRepo)(nil)

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[string]entity.Doctor)}
}

func (r *fakeDoctorRepo) Create(d *entity.Doctor) error {
	r.doctors[d.ID] = *d
	return nil
}

func (r *fakeDoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	out := d
	return &out, nil
}

func (r *fakeDoctorRepo) GetByEmail(email string) (*entity.Doctor, error) {
	for _, d := range r.doctors {
		if d.Email == email {
			out := d
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) List(limit, offset int) ([]*entity.Doctor, error) {
	out := make([]*entity.Doctor, 0, len(r.doctors))
	for id := range r.doctors {
		d := r.doctors[id]
		out = append(out, &d)
	}
	return out, nil
}

func (r *fakeDoctorRepo) Update(d *entity.Doctor) error {
	r.doctors[d.ID] = *d
	return nil
}

func (r *fakeDoctorRepo) Delete(id string) (bool, error) {
	if _, ok := r.doctors[id]; !ok {
		return false, nil
	}
	delete(r.doctors, id)
	return true, nil
}

type fakeAppointmentRepo struct {
	appointments map[string]entity.Appointment
}

var _ repository.AppointmentRepository = (*fakeAppointmentRepo)(nil)

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(a *entity.Appointment) error {
	r.appointments[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	out := a
	return &out, nil
}

func (r *fakeAppointmentRepo) List(limit, offset int) ([]*entity.Appointment, error) {
	out := make([]*entity.Appointment, 0, len(r.appointments))
	for id := range r.appointments {
		a := r.appointments[id]
		out = append(out, &a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(a *entity.Appointment) error {
	r.appointments[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) Delete(id string) (bool, error) {
	if _, ok := r.appointments[id]; !ok {
		return false, nil
	}
	delete(r.appointments, id)
	return true, nil
}

type fakeRecordRepo struct {
	records map[string]entity.MedicalRecord
}

var _ repository.MedicalRecordRepository = (*fakeRecordRepo)(nil)

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]entity.MedicalRecord)}
}

func (r *fakeRecordRepo) Create(rec *entity.MedicalRecord) error {
	r.records[rec.ID] = *rec
	return nil
}

func (r *fakeRecordRepo) GetByID(id string) (*entity.MedicalRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

func (r *fakeRecordRepo) ListByPatient(patientID string, limit, offset int) ([]*entity.MedicalRecord, error) {
	out := make([]*entity.MedicalRecord, 0)
	for id := range r.records {
		rec := r.records[id]
		if rec.PatientID == patientID {
			out = append(out, &rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeRecordRepo) Update(rec *entity.MedicalRecord) error {
	r.records[rec.ID] = *rec
	return nil
}

func (r *fakeRecordRepo) Delete(id string) (bool, error) {
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}
