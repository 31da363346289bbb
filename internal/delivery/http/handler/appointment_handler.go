package handler

import (
	"net/http"

	"patient-portal/internal/booking"
	"patient-portal/internal/converter"
	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
	"patient-portal/internal/usecase"
	"patient-portal/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	workflow           *booking.Workflow
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, workflow *booking.Workflow) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		workflow:           workflow,
	}
}

// List returns the appointment collection, filtered and sorted for display
// @Summary List appointments
// @Description Optional status filter; results sorted newest date first. Carries the one-shot post-booking message when present.
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param status query string false "upcoming|completed|cancelled"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	// The service returns an unsorted snapshot; filtering and ordering are
	// view concerns.
	counts := converter.CountAppointmentsByStatus(appointments)
	status := entity.AppointmentStatus(r.URL.Query().Get("status"))
	filtered := entity.FilterAppointmentsByStatus(appointments, status)
	entity.SortAppointmentsByDateDesc(filtered)

	msg, _ := h.workflow.ConsumeMessage()

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(filtered),
		Total:        len(filtered),
		Counts:       counts,
		Message:      msg,
	})
}

// Cancel cancels an appointment
// @Summary Cancel appointment
// @Description Flips the appointment status to cancelled; the transition is terminal
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	cancelled, err := h.appointmentUsecase.Cancel(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", converter.AppointmentToResponse(cancelled))
}
