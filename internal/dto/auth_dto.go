package dto

import (
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token      string    `json:"token"`
	EmployeeId uuid.UUID `json:"employee_id"`
	BusinessId uuid.UUID `json:"business_id"`
	Name       string    `json:"name"`
}
