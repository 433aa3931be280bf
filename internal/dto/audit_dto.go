package dto

import (
	"github.com/google/uuid"
)

// AuditMessage is the payload carried on the in-process audit topic between
// the orchestration services and the audit consumer.
type AuditMessage struct {
	BusinessId uuid.UUID              `json:"business_id"`
	SessionId  *uuid.UUID             `json:"session_id,omitempty"`
	Action     string                 `json:"action"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}
