package booking

import (
	"context"
	"errors"
	"sync"

	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
	"patient-portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoDoctor means the workflow was entered without a doctor reference;
	// the caller should send the user back to doctor search, not error out.
	ErrNoDoctor      = errors.New("booking requires a selected doctor")
	ErrDraftNotFound = errors.New("booking draft not found")
)

// Step is the wizard position. Steps are linear; back transitions are
// unconditional and preserve every entered value.
type Step int

const (
	StepDateTime Step = iota + 1
	StepReason
	StepConfirm
)

const bookedMessage = "Appointment booked successfully!"

// Draft is the transient wizard state. It lives from Start until Submit
// succeeds or the caller abandons it; it never outlives the workflow.
type Draft struct {
	ID     uuid.UUID
	Doctor entity.Doctor
	Step   Step

	Date         string
	Time         string
	Reason       string
	Notes        string
	PatientName  string
	PatientPhone string
	PatientEmail string

	// FieldErrors holds per-field validation messages for the current step.
	// Editing a field clears its error, like the original form.
	FieldErrors map[string]string

	// SubmitError persists a failed submission until the user retries.
	SubmitError string
}

// Workflow drives the 3-step booking wizard and owns the one-shot success
// message handed to the appointments view.
type Workflow struct {
	mu           sync.Mutex
	drafts       map[uuid.UUID]*Draft
	appointments usecase.AppointmentUsecase
	log          *logrus.Logger
	flash        string
}

func NewWorkflow(appointments usecase.AppointmentUsecase, log *logrus.Logger) *Workflow {
	return &Workflow{
		drafts:       make(map[uuid.UUID]*Draft),
		appointments: appointments,
		log:          log,
	}
}

// Start opens a draft for the given doctor, prefilling patient contact
// fields from the identity. A nil doctor refuses entry with ErrNoDoctor.
func (w *Workflow) Start(doctor *entity.Doctor, user entity.User) (*Draft, error) {
	if doctor == nil {
		return nil, ErrNoDoctor
	}

	draft := &Draft{
		ID:           uuid.New(),
		Doctor:       *doctor,
		Step:         StepDateTime,
		PatientName:  user.Name,
		PatientPhone: user.Phone,
		PatientEmail: user.Email,
		FieldErrors:  map[string]string{},
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.drafts[draft.ID] = draft
	return draft.clone(), nil
}

// Get returns a snapshot of the draft.
func (w *Workflow) Get(id uuid.UUID) (*Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	draft, ok := w.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return draft.clone(), nil
}

// Next applies the edits and advances one step when the current step
// validates; otherwise the draft stays put with field errors set.
func (w *Workflow) Next(id uuid.UUID, input *dto.BookingStepRequest) (*Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draft, ok := w.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}

	draft.apply(input)
	if errs := draft.validateStep(); len(errs) > 0 {
		draft.FieldErrors = errs
		return draft.clone(), nil
	}

	draft.FieldErrors = map[string]string{}
	if draft.Step < StepConfirm {
		draft.Step++
	}
	return draft.clone(), nil
}

// Back moves one step back unconditionally, keeping all entered values.
func (w *Workflow) Back(id uuid.UUID) (*Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draft, ok := w.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}

	if draft.Step > StepDateTime {
		draft.Step--
	}
	draft.FieldErrors = map[string]string{}
	return draft.clone(), nil
}

// Submit validates the confirm step and books the appointment. On success
// the draft is discarded and the one-shot success message armed; on failure
// the draft stays on the confirm step with a persistent inline error.
func (w *Workflow) Submit(ctx context.Context, id uuid.UUID, input *dto.BookingStepRequest) (*entity.Appointment, *Draft, error) {
	w.mu.Lock()
	draft, ok := w.drafts[id]
	if !ok {
		w.mu.Unlock()
		return nil, nil, ErrDraftNotFound
	}

	draft.apply(input)
	if errs := draft.validateForSubmit(); len(errs) > 0 {
		draft.FieldErrors = errs
		snapshot := draft.clone()
		w.mu.Unlock()
		return nil, snapshot, nil
	}
	draft.FieldErrors = map[string]string{}
	req := draft.toBookingRequest()
	w.mu.Unlock()

	// The booking call suspends on simulated latency; the lock is not held
	// so other drafts stay editable meanwhile.
	appointment, err := w.appointments.Book(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	// The draft may have been abandoned while the call was in flight; a
	// stale result must not resurface UI state.
	draft, stillActive := w.drafts[id]

	if err != nil {
		w.log.Warnf("Booking submission failed: %+v", err)
		if stillActive {
			draft.SubmitError = "Failed to book appointment. Please try again."
			return nil, draft.clone(), err
		}
		return nil, nil, err
	}

	if stillActive {
		delete(w.drafts, id)
		w.flash = bookedMessage
	}
	return appointment, nil, nil
}

// Abandon discards a draft. Unknown ids are a no-op: navigating away twice
// is not an error.
func (w *Workflow) Abandon(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.drafts, id)
}

// ConsumeMessage returns the post-booking banner exactly once.
func (w *Workflow) ConsumeMessage() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.flash == "" {
		return "", false
	}
	msg := w.flash
	w.flash = ""
	return msg, true
}

// apply folds field edits into the draft. Empty means unchanged: a field
// cannot be cleared back to empty once set, so its validation error cannot
// re-trigger after the first correction.
func (d *Draft) apply(input *dto.BookingStepRequest) {
	if input == nil {
		return
	}
	set := func(field string, dst *string, val string) {
		if val == "" {
			return
		}
		*dst = val
		delete(d.FieldErrors, field)
	}
	set("date", &d.Date, input.Date)
	set("time", &d.Time, input.Time)
	set("reason", &d.Reason, input.Reason)
	set("notes", &d.Notes, input.Notes)
	set("patient_name", &d.PatientName, input.PatientName)
	set("patient_phone", &d.PatientPhone, input.PatientPhone)
	set("patient_email", &d.PatientEmail, input.PatientEmail)
}

func (d *Draft) validateStep() map[string]string {
	return d.validate(d.Step)
}

// validateForSubmit enforces every step's requirements, not just the current
// step's: a draft that never advanced to the confirm step must not book.
func (d *Draft) validateForSubmit() map[string]string {
	errs := map[string]string{}
	for _, step := range []Step{StepDateTime, StepReason, StepConfirm} {
		for field, msg := range d.validate(step) {
			errs[field] = msg
		}
	}
	return errs
}

func (d *Draft) validate(step Step) map[string]string {
	errs := map[string]string{}
	switch step {
	case StepDateTime:
		if d.Date == "" {
			errs["date"] = "Please select a date"
		}
		if d.Time == "" {
			errs["time"] = "Please select a time"
		} else if !ValidTimeSlot(d.Time) {
			errs["time"] = "Please pick one of the offered time slots"
		}
	case StepReason:
		if d.Reason == "" {
			errs["reason"] = "Please provide a reason for visit"
		}
	case StepConfirm:
		if d.PatientName == "" {
			errs["patient_name"] = "Name is required"
		}
		if d.PatientPhone == "" {
			errs["patient_phone"] = "Phone is required"
		}
		if d.PatientEmail == "" {
			errs["patient_email"] = "Email is required"
		}
	}
	return errs
}

func (d *Draft) toBookingRequest() *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		DoctorID:     d.Doctor.ID,
		DoctorName:   d.Doctor.Name,
		Specialty:    d.Doctor.Specialty,
		Date:         d.Date,
		Time:         d.Time,
		Reason:       d.Reason,
		Notes:        d.Notes,
		PatientName:  d.PatientName,
		PatientPhone: d.PatientPhone,
		PatientEmail: d.PatientEmail,
	}
}

func (d *Draft) clone() *Draft {
	c := *d
	c.FieldErrors = make(map[string]string, len(d.FieldErrors))
	for k, v := range d.FieldErrors {
		c.FieldErrors[k] = v
	}
	return &c
}
