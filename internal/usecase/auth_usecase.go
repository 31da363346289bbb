package usecase

import (
	"context"
	"errors"

	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
	"patient-portal/pkg/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// DemoUserID is the fixed identity every login resolves to. The mock boundary
// performs no password verification; any non-empty pair succeeds.
var DemoUserID = uuid.MustParse("9c1e5b3a-0000-4c5e-9f4e-2d1a3b4c5d00")

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*entity.User, string, error)
	Logout(ctx context.Context, tok string) error
	Restore(ctx context.Context, tok string, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type authUsecase struct {
	log      *logrus.Logger
	registry *token.Registry
	delay    delayFunc
}

func NewAuthUsecase(log *logrus.Logger, registry *token.Registry, latencyScale float64) AuthUsecase {
	return &authUsecase{
		log:      log,
		registry: registry,
		delay:    newDelayFunc(latencyScale),
	}
}

// Login succeeds for any non-empty email/password pair and returns the demo
// identity carrying the supplied email, plus a freshly issued opaque token.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if err := u.delay(ctx, loginDelay); err != nil {
		return nil, "", err
	}

	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user := &entity.User{
		ID:          DemoUserID,
		Email:       email,
		Name:        "John Doe",
		Phone:       "+1 (555) 123-4567",
		DateOfBirth: "1990-05-15",
		Gender:      "Male",
		Address:     "123 Main St, New York, NY 10001",
		BloodType:   "O+",
		Allergies:   []string{"Penicillin"},
	}

	tok := token.New()
	if err := u.registry.Register(ctx, tok, user.ID); err != nil {
		return nil, "", err
	}

	u.log.Infof("Login: user=%s", user.ID)
	return user, tok, nil
}

// Signup always succeeds: the identity is built from the input plus a
// generated id, and a fresh token is issued.
func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*entity.User, string, error) {
	if err := u.delay(ctx, signupDelay); err != nil {
		return nil, "", err
	}

	user := &entity.User{
		ID:          uuid.New(),
		Email:       req.Email,
		Name:        req.Name,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		BloodType:   req.BloodType,
		Allergies:   append([]string(nil), req.Allergies...),
	}

	tok := token.New()
	if err := u.registry.Register(ctx, tok, user.ID); err != nil {
		return nil, "", err
	}

	u.log.Infof("Signup: user=%s", user.ID)
	return user, tok, nil
}

// Logout revokes the token. Revoking an already-revoked token is a no-op, so
// the operation is idempotent.
func (u *authUsecase) Logout(ctx context.Context, tok string) error {
	return u.registry.Revoke(ctx, tok)
}

// Restore re-registers a token hydrated from durable storage so it passes
// the middleware check after a process restart. No artificial delay: session
// hydration involves no network call.
func (u *authUsecase) Restore(ctx context.Context, tok string, userID uuid.UUID) error {
	return u.registry.Register(ctx, tok, userID)
}

// UpdateProfile echoes the input back with an acknowledgement flag. It never
// touches session state; the caller reconciles the echo into the identity.
func (u *authUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if err := u.delay(ctx, profileDelay); err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Name:        req.Name,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		BloodType:   req.BloodType,
		Allergies:   req.Allergies,
		Updated:     true,
	}, nil
}
