package specification

import (
	"gorm.io/gorm"
)

// ByCustomer filters sessions/orders by the channel identity of a customer.
type ByCustomer struct {
	CustomerID string
}

func (s ByCustomer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

// ByChannel filters sessions by transport channel ("whatsapp", "telegram", ...).
type ByChannel struct {
	Channel string
}

func (s ByChannel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("channel = ?", s.Channel)
}

// EligibleForBot keeps only sessions the bot may act on: unlocked and not
// assigned to an employee.
type EligibleForBot struct{}

func (s EligibleForBot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("locked = ? AND assigned_employee_id IS NULL", false)
}
