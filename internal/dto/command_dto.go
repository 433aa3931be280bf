package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CommandRequest is one function call emitted by the model-invocation layer
// on behalf of a customer turn.
type CommandRequest struct {
	BusinessId uuid.UUID       `json:"business_id" validate:"required"`
	CustomerId string          `json:"customer_id" validate:"required"`
	Channel    string          `json:"channel" validate:"required"`
	Action     string          `json:"action" validate:"required"`
	Arguments  json.RawMessage `json:"arguments,omitempty"`
}

// CommandResult is the uniform envelope every action returns. A business
// failure is success=false with a relayable message, never an HTTP error.
type CommandResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func ResultOk(message string, data interface{}) *CommandResult {
	return &CommandResult{Success: true, Message: message, Data: data}
}

func ResultFail(code, message string, data interface{}) *CommandResult {
	return &CommandResult{Success: false, Error: code, Message: message, Data: data}
}
