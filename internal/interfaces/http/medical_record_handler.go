package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/healthflow-api/internal/application/dto"
	"github.com/tu-usuario/healthflow-api/internal/application/usecase"
)

// MedicalRecordHandler maneja las peticiones HTTP para MedicalRecord (protegido).
type MedicalRecordHandler struct {
	uc *usecase.MedicalRecordUseCase
}

// NewMedicalRecordHandler construye el handler.
func NewMedicalRecordHandler(uc *usecase.MedicalRecordUseCase) *MedicalRecordHandler {
	return &MedicalRecordHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro clínico
// @Tags         medical-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicalRecordRequest  true  "Datos del registro"
// @Success      201   {object}  dto.MedicalRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medical-records [post]
func (h *MedicalRecordHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicalRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PatientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "patient_id es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro clínico por ID
// @Tags         medical-records
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.MedicalRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medical-records/{id} [get]
func (h *MedicalRecordHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByPatient godoc
// @Summary      Historial clínico de un paciente
// @Tags         medical-records
// @Security     Bearer
// @Produce      json
// @Param        patientId  path   string  true   "ID del paciente"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MedicalRecordListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/patients/{patientId}/medical-records [get]
func (h *MedicalRecordHandler) ListByPatient(c *fiber.Ctx) error {
	patientID := c.Params("patientId")
	if patientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "patientId es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListByPatient(patientID, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar registro clínico
// @Tags         medical-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateMedicalRecordRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MedicalRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medical-records/{id} [put]
func (h *MedicalRecordHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateMedicalRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro clínico
// @Tags         medical-records
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medical-records/{id} [delete]
func (h *MedicalRecordHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
