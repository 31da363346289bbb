package converter

import (
	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
)

// UserToResponse converts a User entity to a UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Phone:       user.Phone,
		DateOfBirth: user.DateOfBirth,
		Gender:      user.Gender,
		Address:     user.Address,
		BloodType:   user.BloodType,
		Allergies:   append([]string(nil), user.Allergies...),
	}
}

// ProfileResponseToPatch turns the acknowledged profile echo into the patch
// the session layer merges into the identity.
func ProfileResponseToPatch(resp *dto.ProfileResponse) entity.UserPatch {
	if resp == nil {
		return entity.UserPatch{}
	}
	return entity.UserPatch{
		Name:        resp.Name,
		Phone:       resp.Phone,
		DateOfBirth: resp.DateOfBirth,
		Gender:      resp.Gender,
		Address:     resp.Address,
		BloodType:   resp.BloodType,
		Allergies:   resp.Allergies,
	}
}
