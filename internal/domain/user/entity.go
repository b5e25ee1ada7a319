package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Title        *string
	Location     *string
	Bio          *string
	Skills       []string
	Role         string
	CreatedAt    time.Time
}
