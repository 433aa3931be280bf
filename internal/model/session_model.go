package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Session struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessId         uuid.UUID      `gorm:"type:uuid;not null;index:idx_sessions_key,priority:1"`
	CustomerId         string         `gorm:"type:varchar(100);not null;index:idx_sessions_key,priority:2"` // channel identity (phone / chat id)
	Channel            string         `gorm:"type:varchar(30);not null;index:idx_sessions_key,priority:3"`
	Mode               string         `gorm:"type:varchar(20);not null;default:'support'"`
	Step               string         `gorm:"type:varchar(50);not null;default:'start'"`
	DraftPayload       datatypes.JSON `gorm:"type:jsonb"`
	Locked             bool           `gorm:"not null;default:false"`
	AssignedEmployeeId *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (Session) TableName() string {
	return "sessions"
}
