package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records one orchestration action. Appends are best-effort:
// a failed audit write never aborts the operation that produced it.
type AuditLog struct {
	Id         uuid.UUID
	BusinessId uuid.UUID
	SessionId  *uuid.UUID
	Action     string
	Payload    map[string]interface{}
	CreatedAt  time.Time
}
