package handler

import (
	"encoding/json"
	"net/http"

	"patient-portal/internal/converter"
	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/delivery/http/middleware"
	"patient-portal/internal/session"
	"patient-portal/internal/usecase"
	"patient-portal/pkg/response"
	"patient-portal/pkg/validator"
)

type AuthHandler struct {
	sessions    *session.Manager
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(sessions *session.Manager, authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		sessions:    sessions,
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles user login
// @Summary Login user
// @Description Login with email and password; any non-empty pair is accepted by the mock boundary
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	user, tok, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid credentials", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", dto.AuthResponse{
		User:  *converter.UserToResponse(user),
		Token: tok,
	})
}

// Signup handles user registration
// @Summary Sign up
// @Description Create an identity from the submitted profile data
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, tok, err := h.sessions.Signup(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to sign up")
		return
	}

	response.Success(w, http.StatusCreated, "Signup successful", dto.AuthResponse{
		User:  *converter.UserToResponse(user),
		Token: tok,
	})
}

// Logout handles user logout
// @Summary Logout
// @Description Revoke the session token and clear the persisted session
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// A token issued before the current session (a stale login) is not the
	// one the session would revoke; revoke the presented one too.
	if tok, ok := middleware.GetTokenFromContext(r.Context()); ok && tok != h.sessions.Token() {
		if err := h.authUsecase.Logout(r.Context(), tok); err != nil {
			response.InternalServerError(w, "Failed to logout")
			return
		}
	}
	h.sessions.Logout(r.Context())
	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// GetCurrentUser returns the authenticated identity
// @Summary Get current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessions.Current()
	if !ok {
		response.Unauthorized(w, "No active session")
		return
	}
	// A valid token minted for a previous identity must not read the
	// current one.
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok && userID != user.ID {
		response.Unauthorized(w, "No active session")
		return
	}
	response.Success(w, http.StatusOK, "User retrieved successfully", converter.UserToResponse(&user))
}

// UpdateProfile handles profile edits
// @Summary Update profile
// @Description Submit a profile update and reconcile the acknowledged echo into the session identity
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ack, err := h.authUsecase.UpdateProfile(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update profile")
		return
	}

	// The service only echoes; the session is reconciled here, by the caller.
	user, err := h.sessions.UpdateUser(converter.ProfileResponseToPatch(ack))
	if err != nil {
		if err == session.ErrNotAuthenticated {
			response.Unauthorized(w, "No active session")
			return
		}
		response.InternalServerError(w, "Failed to persist profile update")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", converter.UserToResponse(&user))
}
