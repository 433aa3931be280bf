package contract

import (
	"context"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/repository/specification"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AppendStatusHistory adds one row to the append-only status stream.
	AppendStatusHistory(ctx context.Context, h *entity.OrderStatusHistory) error
	FindStatusHistory(ctx context.Context, orderId uuid.UUID) ([]*entity.OrderStatusHistory, error)
}
