package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a business staff member who can take over locked sessions
// and manage orders through the merchant console.
type Employee struct {
	Id           uuid.UUID
	BusinessId   uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
