package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLastName = "lastName"
	DefaultLocation = "my city"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	LastName     string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
