package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByStatus filters orders by their current status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ScheduledAfter keeps orders whose scheduled time is strictly in the future
// of the given instant. Orders without a schedule are excluded.
type ScheduledAfter struct {
	Instant time.Time
}

func (s ScheduledAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scheduled_for IS NOT NULL AND scheduled_for > ?", s.Instant)
}

// AvailableOnly keeps catalog items currently offered.
type AvailableOnly struct{}

func (s AvailableOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("available = ?", true)
}

// ByEmail filters employees by login email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
