package handler

import (
	"net/http"

	"patient-portal/internal/converter"
	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/usecase"
	"patient-portal/pkg/response"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase) *MedicalRecordHandler {
	return &MedicalRecordHandler{recordUsecase: recordUsecase}
}

// GetRecords returns the medical record set
// @Summary Get medical records
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /medical-records [get]
func (h *MedicalRecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.GetRecords(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medical records")
		return
	}
	response.Success(w, http.StatusOK, "Medical records retrieved successfully", converter.MedicalRecordSetToResponse(records))
}

// GetHealthTips returns the static tip list
// @Summary Get health tips
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /health-tips [get]
func (h *MedicalRecordHandler) GetHealthTips(w http.ResponseWriter, r *http.Request) {
	tips, err := h.recordUsecase.GetHealthTips(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get health tips")
		return
	}
	response.Success(w, http.StatusOK, "Health tips retrieved successfully", dto.HealthTipsResponse{Tips: tips})
}
