package dto

// UpdateProfileRequest is a partial identity update; nil fields are left
// untouched by the merge.
type UpdateProfileRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2"`
	Phone       *string  `json:"phone,omitempty" validate:"omitempty,min=7,max=25"`
	DateOfBirth *string  `json:"date_of_birth,omitempty"`
	Gender      *string  `json:"gender,omitempty"`
	Address     *string  `json:"address,omitempty"`
	BloodType   *string  `json:"blood_type,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
}

// ProfileResponse echoes the submitted update with an acknowledgement flag.
// The server side never reconciles it into the session; the caller does.
type ProfileResponse struct {
	Name        *string  `json:"name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	DateOfBirth *string  `json:"date_of_birth,omitempty"`
	Gender      *string  `json:"gender,omitempty"`
	Address     *string  `json:"address,omitempty"`
	BloodType   *string  `json:"blood_type,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
	Updated     bool     `json:"updated"`
}
