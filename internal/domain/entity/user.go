package entity

import "github.com/google/uuid"

// User is the authenticated patient identity owned by the session layer.
// It is created by login/signup and mutated only through profile updates.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	DateOfBirth string    `json:"date_of_birth"` // Format: YYYY-MM-DD
	Gender      string    `json:"gender"`
	Address     string    `json:"address"`
	BloodType   string    `json:"blood_type"`
	Allergies   []string  `json:"allergies"`
}

// Merge returns a copy of u with the non-zero fields of patch applied.
// Fields absent from the patch are retained; the allergy set is replaced
// wholesale when provided.
func (u User) Merge(patch UserPatch) User {
	merged := u
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		merged.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		merged.Gender = *patch.Gender
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.BloodType != nil {
		merged.BloodType = *patch.BloodType
	}
	if patch.Allergies != nil {
		merged.Allergies = append([]string(nil), patch.Allergies...)
	}
	return merged
}

// UserPatch is a partial identity update. Nil fields mean "keep current".
type UserPatch struct {
	Email       *string
	Name        *string
	Phone       *string
	DateOfBirth *string
	Gender      *string
	Address     *string
	BloodType   *string
	Allergies   []string
}
