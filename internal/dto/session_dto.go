package dto

import (
	"time"

	"github.com/google/uuid"
)

type SessionDTO struct {
	Id                 uuid.UUID  `json:"id"`
	BusinessId         uuid.UUID  `json:"business_id"`
	CustomerId         string     `json:"customer_id"`
	Channel            string     `json:"channel"`
	Mode               string     `json:"mode"`
	Step               string     `json:"step"`
	Locked             bool       `json:"locked"`
	AssignedEmployeeId *uuid.UUID `json:"assigned_employee_id,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// ResumeData carries what the workflow layer needs to reconstruct
// conversational continuity after a restart.
type ResumeData struct {
	SessionId uuid.UUID     `json:"session_id"`
	Mode      string        `json:"mode"`
	Step      string        `json:"step"`
	Draft     *DraftSummary `json:"draft,omitempty"`
}

// SwitchModeData reports the transition that was applied.
type SwitchModeData struct {
	SessionId uuid.UUID `json:"session_id"`
	OldMode   string    `json:"old_mode"`
	NewMode   string    `json:"new_mode"`
	Step      string    `json:"step"`
}

type AssignEmployeeRequest struct {
	EmployeeId uuid.UUID `json:"employee_id" validate:"required"`
}
