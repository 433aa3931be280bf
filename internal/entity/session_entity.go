package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one customer's ongoing conversation with a business on a
// channel. At most one unlocked, unassigned session is active per
// (business, customer, channel).
type Session struct {
	Id                 uuid.UUID
	BusinessId         uuid.UUID
	CustomerId         string
	Channel            string
	Mode               string
	Step               string
	Draft              DraftPayload
	Locked             bool
	AssignedEmployeeId *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Eligible reports whether the bot may act on this session.
func (s *Session) Eligible() bool {
	return !s.Locked && s.AssignedEmployeeId == nil
}
