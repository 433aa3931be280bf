package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessId uuid.UUID      `gorm:"type:uuid;not null;index:idx_audit_business_created,priority:1"`
	SessionId  *uuid.UUID     `gorm:"type:uuid;index"`
	Action     string         `gorm:"type:varchar(50);not null"`
	Payload    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index:idx_audit_business_created,priority:2"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
