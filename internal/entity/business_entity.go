package entity

import (
	"time"

	"github.com/google/uuid"
)

// OpeningHour is one weekday row of a business's weekly schedule. Open and
// Close are "HH:MM" local to the business timezone; Closed days ignore them.
type OpeningHour struct {
	Weekday time.Weekday `json:"weekday"`
	Closed  bool         `json:"closed"`
	Open    string       `json:"open,omitempty"`
	Close   string       `json:"close,omitempty"`
}

// Business is the tenant a session and its orders belong to.
type Business struct {
	Id                           uuid.UUID
	Name                         string
	Timezone                     string
	Location                     *GeoPoint
	DeliveryRadiusKm             *float64
	DeliveryFee                  float64
	DefaultCancelableBeforeHours *float64
	NotificationEmail            string
	OpeningHours                 []OpeningHour
	CreatedAt                    time.Time
	UpdatedAt                    *time.Time
}
