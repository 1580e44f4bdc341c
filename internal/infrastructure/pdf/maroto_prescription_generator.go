// Package pdf implementa la generación de la receta médica imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: HealthFlow + RECETA MÉDICA │ N° Receta + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PACIENTE: Nombre + fecha de nacimiento + contacto          │
//	│  MÉDICO: Nombre + especialidad + contacto                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Medicamento | Dosis | Vencimiento               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS + QR con el identificador de la receta               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/healthflow-api/internal/application/pharmacy"
	"github.com/tu-usuario/healthflow-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 102}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ pharmacy.PrescriptionPDFGenerator = (*MarotoPrescriptionGenerator)(nil)

// MarotoPrescriptionGenerator implementa pharmacy.PrescriptionPDFGenerator usando Maroto v2.
type MarotoPrescriptionGenerator struct{}

// NewMarotoPrescriptionGenerator construye el generador.
func NewMarotoPrescriptionGenerator() *MarotoPrescriptionGenerator {
	return &MarotoPrescriptionGenerator{}
}

// GeneratePrescriptionPDF genera el PDF de la receta y devuelve sus bytes.
func (g *MarotoPrescriptionGenerator) GeneratePrescriptionPDF(
	_ context.Context,
	prescription *entity.Prescription,
	patient *entity.Patient,
	doctor *entity.Doctor,
	medications []*entity.Medication,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Receta Médica", true).
		WithAuthor("HealthFlow", true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(prescription))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(patientRow(patient))
	m.AddRows(doctorRow(doctor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de medicamentos
	m.AddRows(tableHeaderRow())
	for _, r := range tableMedicationRows(medications) {
		m.AddRows(r)
	}

	// Notas + QR
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(prescription) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y número de receta + fecha (der).
func headerRow(prescription *entity.Prescription) core.Row {
	fecha := prescription.PrescriptionDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("HealthFlow", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sistema de gestión hospitalaria", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECETA MÉDICA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(prescription.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// patientRow: datos del paciente.
func patientRow(patient *entity.Patient) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PACIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(patient.FirstName+" "+patient.LastName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Fecha de nacimiento: %s   |   Tel: %s",
				patient.DateOfBirth.Format("02/01/2006"),
				nonEmpty(patient.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// doctorRow: datos del médico prescriptor.
func doctorRow(doctor *entity.Doctor) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("MÉDICO PRESCRIPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dr(a). %s %s   |   %s   |   Email: %s",
				doctor.FirstName, doctor.LastName,
				nonEmpty(doctor.Specialty, "Medicina general"),
				nonEmpty(doctor.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de medicamentos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Medicamento", 6, align.Left),
		h("Dosis", 3, align.Left),
		h("Vence", 2, align.Right),
	)
}

// tableMedicationRows: una fila por medicamento recetado.
func tableMedicationRows(medications []*entity.Medication) []core.Row {
	result := make([]core.Row, 0, len(medications))
	for i, med := range medications {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				med.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				med.Dosage,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				med.ExpirationDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRows: código QR con el identificador de la receta + leyenda.
func footerRows(prescription *entity.Prescription) []core.Row {
	rows := []core.Row{row.New(3)}

	rows = append(rows, row.New(40).Add(
		col.New(4).Add(code.NewQr(prescription.ID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR en farmacia\npara verificar esta receta.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Válida únicamente con firma\ndel médico prescriptor.", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 20,
				Left: 3, Color: colorPrimary,
			}),
		),
	))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
