package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"patient-portal/internal/booking"
	portalhttp "patient-portal/internal/delivery/http"
	"patient-portal/internal/delivery/http/handler"
	"patient-portal/internal/delivery/http/middleware"
	"patient-portal/internal/infrastructure/storage"
	"patient-portal/internal/infrastructure/store"
	"patient-portal/internal/repository"
	"patient-portal/internal/service"
	"patient-portal/internal/session"
	"patient-portal/internal/usecase"
	"patient-portal/pkg/token"
	"patient-portal/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type testServer struct {
	*httptest.Server
	sessions *session.Manager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	st := store.New()
	doctorRepo := repository.NewDoctorRepository(st)
	appointmentRepo := repository.NewAppointmentRepository(st)
	recordRepo := repository.NewMedicalRecordRepository(st)

	registry := token.NewRegistry(client, 0, log)
	cache := service.NewAppointmentCache(client, log)

	authUsecase := usecase.NewAuthUsecase(log, registry, 0)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, 0)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, cache, 0)
	recordUsecase := usecase.NewMedicalRecordUsecase(log, recordRepo, 0)

	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	sessions := session.NewManager(authUsecase, local, log)
	sessions.Hydrate(context.Background())

	workflow := booking.NewWorkflow(appointmentUsecase, log)

	router := portalhttp.NewRouter(
		handler.NewAuthHandler(sessions, authUsecase, validator.NewValidator()),
		handler.NewDoctorHandler(doctorUsecase, st),
		handler.NewAppointmentHandler(appointmentUsecase, workflow),
		handler.NewMedicalRecordHandler(recordUsecase),
		handler.NewBookingHandler(workflow, doctorUsecase, sessions),
		middleware.NewAuthMiddleware(registry),
		middleware.NewCORSMiddleware("*"),
	)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, sessions: sessions}
}

func (s *testServer) do(t *testing.T, method, path, tok string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.URL+path, &buf)
	require.NoError(t, err)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var env envelope
	if resp.Header.Get("Content-Type") == "application/json" {
		_ = json.NewDecoder(resp.Body).Decode(&env)
	}
	return resp, env
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "john@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRejectsEmptyPassword(t *testing.T) {
	s := newTestServer(t)
	resp, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "john@example.com",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/v1/doctors", "/api/v1/appointments", "/api/v1/medical-records", "/api/v1/auth/me"} {
		resp, _ := s.do(t, http.MethodGet, path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}

	resp, _ := s.do(t, http.MethodGet, "/api/v1/doctors", "portal-never-issued", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name":     "J",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)

	resp, env = s.do(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name":     "Jane Roe",
		"email":    "jane@example.com",
		"password": "secret12",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)
}

func TestDoctorSearchAndMeta(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t)

	resp, env := s.do(t, http.MethodGet, "/api/v1/doctors", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Doctors []json.RawMessage `json:"doctors"`
		Total   int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 8, list.Total)

	resp, env = s.do(t, http.MethodGet, "/api/v1/doctors?specialty=Cardiology&location=new", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Total)

	resp, env = s.do(t, http.MethodGet, "/api/v1/doctors/meta", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var meta struct {
		Specialties []string `json:"specialties"`
		Locations   []string `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &meta))
	assert.NotEmpty(t, meta.Specialties)
	assert.NotEmpty(t, meta.Locations)

	resp, _ = s.do(t, http.MethodGet, "/api/v1/doctors/999", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAppointmentListFilterAndCancel(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t)

	resp, env := s.do(t, http.MethodGet, "/api/v1/appointments", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Appointments []struct {
			ID     string `json:"id"`
			Date   string `json:"date"`
			Status string `json:"status"`
		} `json:"appointments"`
		Total  int `json:"total"`
		Counts struct {
			Upcoming  int `json:"upcoming"`
			Completed int `json:"completed"`
			Cancelled int `json:"cancelled"`
		} `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 4, list.Total)
	assert.Equal(t, 2, list.Counts.Upcoming)
	for i := 1; i < len(list.Appointments); i++ {
		assert.GreaterOrEqual(t, list.Appointments[i-1].Date, list.Appointments[i].Date, "sorted newest first")
	}

	resp, env = s.do(t, http.MethodGet, "/api/v1/appointments?status=upcoming", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, 2, list.Counts.Upcoming, "counts cover the full set, not the filtered page")

	target := list.Appointments[0].ID
	resp, env = s.do(t, http.MethodDelete, "/api/v1/appointments/"+target, tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cancelled struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)

	resp, _ = s.do(t, http.MethodDelete, "/api/v1/appointments/1f0c2a9e-0000-4000-8000-000000000000", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBookingWizardEndToEnd(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t)

	// No doctor selected: redirected to doctor search.
	resp, _ := s.do(t, http.MethodPost, "/api/v1/bookings", tok, map[string]int{})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/api/v1/doctors", resp.Header.Get("Location"))

	resp, env := s.do(t, http.MethodPost, "/api/v1/bookings", tok, map[string]int{"doctor_id": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var draft struct {
		ID          string            `json:"id"`
		Step        int               `json:"step"`
		PatientName string            `json:"patient_name"`
		FieldErrors map[string]string `json:"field_errors"`
		SubmitError string            `json:"submit_error"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, 1, draft.Step)
	assert.Equal(t, "John Doe", draft.PatientName, "contact fields prefilled from the session identity")

	base := "/api/v1/bookings/" + draft.ID

	// Step 1 with a missing time: stays put with a single field error.
	resp, env = s.do(t, http.MethodPost, base+"/next", tok, map[string]string{"date": "2026-03-01"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, 1, draft.Step)
	assert.Equal(t, "Please select a time", draft.FieldErrors["time"])

	resp, env = s.do(t, http.MethodPost, base+"/next", tok, map[string]string{"time": "10:00 AM"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, 2, draft.Step)

	resp, env = s.do(t, http.MethodPost, base+"/next", tok, map[string]string{"reason": "Annual Physical"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, 3, draft.Step)

	// Back keeps everything.
	resp, env = s.do(t, http.MethodPost, base+"/back", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, 2, draft.Step)

	resp, env = s.do(t, http.MethodPost, base+"/next", tok, struct{}{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, 3, draft.Step)

	resp, env = s.do(t, http.MethodPost, base+"/submit", tok, struct{}{})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var result struct {
		Appointment struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"appointment"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "upcoming", result.Appointment.Status)
	assert.Equal(t, "Appointment booked successfully!", result.Message)

	// The draft is gone.
	resp, _ = s.do(t, http.MethodGet, base, tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The appointments view shows the banner exactly once.
	resp, env = s.do(t, http.MethodGet, "/api/v1/appointments", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Total   int    `json:"total"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 5, list.Total)
	assert.Equal(t, "Appointment booked successfully!", list.Message)

	_, env = s.do(t, http.MethodGet, "/api/v1/appointments", tok, nil)
	list.Message = ""
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list.Message)
}

func TestBookingSlotsCatalogue(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t)

	resp, env := s.do(t, http.MethodGet, "/api/v1/bookings/slots", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var slots struct {
		TimeSlots []string `json:"time_slots"`
		Reasons   []string `json:"reasons"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &slots))
	assert.Contains(t, slots.TimeSlots, "10:00 AM")
	assert.NotEmpty(t, slots.Reasons)
}

func TestProfileUpdateFlowsIntoSession(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t)

	resp, env := s.do(t, http.MethodPut, "/api/v1/profile", tok, map[string]string{"phone": "+1 (555) 000-0101"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	resp, env = s.do(t, http.MethodGet, "/api/v1/auth/me", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "+1 (555) 000-0101", me.Phone)
	assert.Equal(t, "John Doe", me.Name, "unpatched fields retain their values")
}

func TestLogoutRevokesAccess(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t)

	resp, _ := s.do(t, http.MethodPost, "/api/v1/auth/logout", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/v1/doctors", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMedicalRecordsAndTips(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t)

	resp, env := s.do(t, http.MethodGet, "/api/v1/medical-records", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var records struct {
		LabResults []struct {
			Test string `json:"test"`
		} `json:"lab_results"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &records))
	assert.Len(t, records.LabResults, 4)

	resp, env = s.do(t, http.MethodGet, "/api/v1/health-tips", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tips struct {
		Tips []struct {
			Title string `json:"title"`
		} `json:"tips"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tips))
	assert.Len(t, tips.Tips, 4)
}
