package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	Id                           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                         string    `gorm:"type:varchar(200);not null"`
	Timezone                     string    `gorm:"type:varchar(50);not null;default:'UTC'"`
	Latitude                     *float64  `gorm:"type:numeric(9,6)"`
	Longitude                    *float64  `gorm:"type:numeric(9,6)"`
	DeliveryRadiusKm             *float64  `gorm:"type:numeric(6,2)"`
	DeliveryFee                  float64   `gorm:"type:numeric(12,2);not null;default:0"`
	DefaultCancelableBeforeHours *float64  `gorm:"type:numeric(6,2)"`
	NotificationEmail            string    `gorm:"type:varchar(200)"`
	CreatedAt                    time.Time `gorm:"autoCreateTime"`
	UpdatedAt                    time.Time `gorm:"autoUpdateTime"`
	DeletedAt                    gorm.DeletedAt `gorm:"index"`

	OpeningHours []BusinessOpeningHour `gorm:"foreignKey:BusinessId"`
}

func (Business) TableName() string {
	return "businesses"
}

type BusinessOpeningHour struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessId uuid.UUID `gorm:"type:uuid;not null;index"`
	Weekday    int       `gorm:"not null"` // 0 = Sunday, matching time.Weekday
	Closed     bool      `gorm:"not null;default:false"`
	Open       string    `gorm:"type:varchar(5)"` // "HH:MM"
	Close      string    `gorm:"type:varchar(5)"`
}

func (BusinessOpeningHour) TableName() string {
	return "business_opening_hours"
}
