package converter

import (
	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}
