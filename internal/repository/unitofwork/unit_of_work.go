package unitofwork

import (
	"context"

	"ai-ordering-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
	OrderRepository() contract.OrderRepository
	ItemRepository() contract.ItemRepository
	BusinessRepository() contract.BusinessRepository
	EmployeeRepository() contract.EmployeeRepository
	AuditLogRepository() contract.AuditLogRepository
}
