package contract

import (
	"context"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/repository/specification"
)

// ItemRepository reads the catalog. The orchestration core treats items as
// read-only; Create/Update exist for migrations and seeding only.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Item, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Item, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	Update(ctx context.Context, business *entity.Business) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Business, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Business, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error)
}
