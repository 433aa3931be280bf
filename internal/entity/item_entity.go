package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a read-only catalog entity. The orchestration core never mutates
// it; IsSchedulable items may only be ordered with a future scheduled time.
type Item struct {
	Id                    uuid.UUID
	BusinessId            uuid.UUID
	Name                  string
	Price                 float64
	Available             bool
	IsSchedulable         bool
	MinScheduleHours      float64
	CancelableBeforeHours *float64
	Position              int
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}
