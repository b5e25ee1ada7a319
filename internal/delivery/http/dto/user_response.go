package dto

import (
	"time"

	"gatorhire/internal/domain/user"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Title     *string   `json:"title,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Title:     u.Title,
		Location:  u.Location,
		Bio:       u.Bio,
		Skills:    u.Skills,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
