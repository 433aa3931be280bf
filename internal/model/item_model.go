package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Item struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessId            uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                  string    `gorm:"type:varchar(200);not null"`
	Price                 float64   `gorm:"type:numeric(12,2);not null"`
	Available             bool      `gorm:"not null;default:true"`
	IsSchedulable         bool      `gorm:"not null;default:false"`
	MinScheduleHours      float64   `gorm:"type:numeric(6,2);not null;default:0"`
	CancelableBeforeHours *float64  `gorm:"type:numeric(6,2)"`
	Position              int       `gorm:"not null;default:0"` // catalog order, used for match tie-breaks
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

func (Item) TableName() string {
	return "items"
}
