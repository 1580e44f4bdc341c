package pharmacy

import (
	"context"
	"fmt"

	"github.com/tu-usuario/healthflow-api/internal/domain"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
	"github.com/tu-usuario/healthflow-api/internal/domain/repository"
)

// PDFUseCase genera la versión imprimible de una receta para entrega en
// farmacia.
type PDFUseCase struct {
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	medicationRepo   repository.MedicationRepository
	generator        PrescriptionPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	medicationRepo repository.MedicationRepository,
	generator PrescriptionPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		medicationRepo:   medicationRepo,
		generator:        generator,
	}
}

// DownloadPrescriptionPDF carga la receta con paciente, médico y
// medicamentos, y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - *domain.NotFoundError      si la receta o alguna referencia no existe.
func (uc *PDFUseCase) DownloadPrescriptionPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	prescription, err := uc.prescriptionRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener receta: %w", err)
	}
	if prescription == nil {
		return nil, "", &domain.NotFoundError{Resource: "prescription", ID: id}
	}

	patient, err := uc.patientRepo.GetByID(prescription.PatientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener paciente: %w", err)
	}
	if patient == nil {
		return nil, "", &domain.NotFoundError{Resource: "patient", ID: prescription.PatientID}
	}

	doctor, err := uc.doctorRepo.GetByID(prescription.DoctorID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener médico: %w", err)
	}
	if doctor == nil {
		return nil, "", &domain.NotFoundError{Resource: "doctor", ID: prescription.DoctorID}
	}

	medications := make([]*entity.Medication, 0, len(prescription.MedicationIDs))
	for _, medID := range prescription.MedicationIDs {
		med, err := uc.medicationRepo.GetByID(medID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener medicamento: %w", err)
		}
		if med == nil {
			return nil, "", &domain.NotFoundError{Resource: "medication", ID: medID}
		}
		medications = append(medications, med)
	}

	pdfBytes, err = uc.generator.GeneratePrescriptionPDF(ctx, prescription, patient, doctor, medications)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar receta: %w", err)
	}
	filename = fmt.Sprintf("receta-%s.pdf", prescription.ID)
	return pdfBytes, filename, nil
}
