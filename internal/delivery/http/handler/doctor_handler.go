package handler

import (
	"net/http"
	"strconv"

	"patient-portal/internal/converter"
	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
	"patient-portal/internal/infrastructure/store"
	"patient-portal/internal/usecase"
	"patient-portal/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	store         *store.Store
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, store *store.Store) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		store:         store,
	}
}

// Search handles doctor search
// @Summary Search doctors
// @Description Filter by exact specialty, location substring, and a free-text term over name or specialty
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param specialty query string false "Exact specialty"
// @Param location query string false "Location substring (case-insensitive)"
// @Param search query string false "Name-or-specialty substring (case-insensitive)"
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.DoctorFilter{
		Specialty: query.Get("specialty"),
		Location:  query.Get("location"),
		Search:    query.Get("search"),
	}

	doctors, err := h.doctorUsecase.Search(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to search doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	})
}

// Get returns one doctor by id
// @Summary Get doctor
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", converter.DoctorToResponse(doctor))
}

// Meta returns the specialty and location reference lists
// @Summary Doctor search metadata
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctors/meta [get]
func (h *DoctorHandler) Meta(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Metadata retrieved successfully", dto.DoctorMetaResponse{
		Specialties: h.store.Specialties(),
		Locations:   h.store.Locations(),
	})
}
