package handler

import (
	"encoding/json"
	"net/http"

	"patient-portal/internal/booking"
	"patient-portal/internal/converter"
	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/session"
	"patient-portal/internal/usecase"
	"patient-portal/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// doctorSearchPath is where a booking attempt without a doctor is sent.
const doctorSearchPath = "/api/v1/doctors"

type BookingHandler struct {
	workflow      *booking.Workflow
	doctorUsecase usecase.DoctorUsecase
	sessions      *session.Manager
}

func NewBookingHandler(workflow *booking.Workflow, doctorUsecase usecase.DoctorUsecase, sessions *session.Manager) *BookingHandler {
	return &BookingHandler{
		workflow:      workflow,
		doctorUsecase: doctorUsecase,
		sessions:      sessions,
	}
}

// Start opens a booking draft
// @Summary Start booking
// @Description Open a wizard draft for a doctor; without a doctor the caller is redirected to doctor search
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.StartBookingRequest true "Start Request"
// @Success 201 {object} response.Response
// @Failure 303 {object} nil
// @Router /bookings [post]
func (h *BookingHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.StartBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if req.DoctorID == 0 {
		// Entering the wizard without a doctor is not an error state; send
		// the caller to doctor search instead.
		http.Redirect(w, r, doctorSearchPath, http.StatusSeeOther)
		return
	}

	doctor, err := h.doctorUsecase.GetByID(r.Context(), req.DoctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			http.Redirect(w, r, doctorSearchPath, http.StatusSeeOther)
			return
		}
		response.InternalServerError(w, "Failed to start booking")
		return
	}

	user, _ := h.sessions.Current()
	draft, err := h.workflow.Start(doctor, user)
	if err != nil {
		response.InternalServerError(w, "Failed to start booking")
		return
	}

	response.Success(w, http.StatusCreated, "Booking draft created", converter.BookingDraftToResponse(draft))
}

// Slots returns the bookable time slots and the visit reason catalogue
// @Summary Booking slots
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /bookings/slots [get]
func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Slots retrieved successfully", dto.BookingSlotsResponse{
		TimeSlots: booking.TimeSlots(),
		Reasons:   booking.VisitReasons(),
	})
}

// Get returns the current draft state
// @Summary Get booking draft
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	draft, err := h.workflow.Get(id)
	if err != nil {
		response.NotFound(w, "Booking draft not found")
		return
	}
	response.Success(w, http.StatusOK, "Booking draft retrieved", converter.BookingDraftToResponse(draft))
}

// Next applies edits and advances the wizard one step
// @Summary Advance booking wizard
// @Description Validates the current step; on validation failure the draft stays put and field errors are returned
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.BookingStepRequest true "Field edits"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /bookings/{id}/next [post]
func (h *BookingHandler) Next(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}

	var req dto.BookingStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	draft, err := h.workflow.Next(id, &req)
	if err != nil {
		response.NotFound(w, "Booking draft not found")
		return
	}

	if len(draft.FieldErrors) > 0 {
		response.JSON(w, http.StatusUnprocessableEntity, response.Response{
			Success: false,
			Message: "Validation failed",
			Error:   draft.FieldErrors,
			Data:    converter.BookingDraftToResponse(draft),
		})
		return
	}

	response.Success(w, http.StatusOK, "Step advanced", converter.BookingDraftToResponse(draft))
}

// Back moves the wizard one step back
// @Summary Step back in booking wizard
// @Description Unconditional; every entered value is preserved
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id}/back [post]
func (h *BookingHandler) Back(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	draft, err := h.workflow.Back(id)
	if err != nil {
		response.NotFound(w, "Booking draft not found")
		return
	}
	response.Success(w, http.StatusOK, "Step reverted", converter.BookingDraftToResponse(draft))
}

// Submit confirms the booking
// @Summary Submit booking
// @Description Books the appointment; on success the draft is discarded and the appointments view will carry a one-shot message
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.BookingStepRequest true "Confirm-step edits"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /bookings/{id}/submit [post]
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}

	var req dto.BookingStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	appointment, draft, err := h.workflow.Submit(r.Context(), id, &req)
	if err != nil {
		if err == booking.ErrDraftNotFound {
			response.NotFound(w, "Booking draft not found")
			return
		}
		// Submission failure surfaces inline on the draft, not as a toast.
		response.JSON(w, http.StatusBadGateway, response.Response{
			Success: false,
			Message: "Failed to book appointment",
			Data:    converter.BookingDraftToResponse(draft),
		})
		return
	}

	if draft != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.Response{
			Success: false,
			Message: "Validation failed",
			Error:   draft.FieldErrors,
			Data:    converter.BookingDraftToResponse(draft),
		})
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", dto.BookingResultResponse{
		Appointment: *converter.AppointmentToResponse(appointment),
		Message:     "Appointment booked successfully!",
	})
}

// Abandon discards a draft
// @Summary Abandon booking draft
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	h.workflow.Abandon(id)
	response.Success(w, http.StatusOK, "Booking draft discarded", nil)
}

func (h *BookingHandler) draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid draft id", nil)
		return uuid.Nil, false
	}
	return id, true
}
