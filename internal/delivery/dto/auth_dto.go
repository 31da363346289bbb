package dto

import "github.com/google/uuid"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6"`
	Phone       string   `json:"phone" validate:"omitempty,min=7,max=25"`
	DateOfBirth string   `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender      string   `json:"gender" validate:"omitempty"`
	Address     string   `json:"address" validate:"omitempty"`
	BloodType   string   `json:"blood_type" validate:"omitempty"`
	Allergies   []string `json:"allergies" validate:"omitempty"`
}

// Response DTOs

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Address     string    `json:"address,omitempty"`
	BloodType   string    `json:"blood_type,omitempty"`
	Allergies   []string  `json:"allergies,omitempty"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
