package service

import (
	"context"

	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"
	"ai-ordering-be/internal/repository/contract"
	"ai-ordering-be/internal/repository/specification"
	"ai-ordering-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory stand-ins for the store and the surrounding services, enough to
// drive the orchestration paths without Postgres.

type fakeSessionRepo struct {
	sessions  map[uuid.UUID]*entity.Session
	updates   int
	updateErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}}
}

func (r *fakeSessionRepo) put(s *entity.Session) {
	c := *s
	r.sessions[s.Id] = &c
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.Session) error {
	r.put(s)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, s *entity.Session) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	r.put(s)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if s, found := r.sessions[byID.ID]; found {
				c := *s
				return &c, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	res := make([]*entity.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		c := *s
		res = append(res, &c)
	}
	return res, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.sessions)), nil
}

type fakeOrderRepo struct {
	orders    []*entity.Order
	histories []*entity.OrderStatusHistory
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	c := *order
	r.orders = append(r.orders, &c)
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	for i, o := range r.orders {
		if o.Id == order.Id {
			c := *order
			r.orders[i] = &c
		}
	}
	return nil
}

func (r *fakeOrderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			for _, o := range r.orders {
				if o.Id == byID.ID {
					c := *o
					return &c, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	res := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		c := *o
		res = append(res, &c)
	}
	return res, nil
}

func (r *fakeOrderRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) AppendStatusHistory(ctx context.Context, h *entity.OrderStatusHistory) error {
	c := *h
	r.histories = append(r.histories, &c)
	return nil
}

func (r *fakeOrderRepo) FindStatusHistory(ctx context.Context, orderId uuid.UUID) ([]*entity.OrderStatusHistory, error) {
	var res []*entity.OrderStatusHistory
	for _, h := range r.histories {
		if h.OrderId == orderId {
			c := *h
			res = append(res, &c)
		}
	}
	return res, nil
}

type fakeUnitOfWork struct {
	sessionRepo *fakeSessionRepo
	orderRepo   *fakeOrderRepo
	commits     int
	rollbacks   int
	inTx        bool
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.inTx = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.commits++
	u.inTx = false
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if u.inTx {
		u.rollbacks++
		u.inTx = false
	}
	return nil
}

func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository   { return u.sessionRepo }
func (u *fakeUnitOfWork) OrderRepository() contract.OrderRepository       { return u.orderRepo }
func (u *fakeUnitOfWork) ItemRepository() contract.ItemRepository         { return nil }
func (u *fakeUnitOfWork) BusinessRepository() contract.BusinessRepository { return nil }
func (u *fakeUnitOfWork) EmployeeRepository() contract.EmployeeRepository { return nil }
func (u *fakeUnitOfWork) AuditLogRepository() contract.AuditLogRepository { return nil }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: &fakeUnitOfWork{
		sessionRepo: newFakeSessionRepo(),
		orderRepo:   &fakeOrderRepo{},
	}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeCatalog struct {
	items    []*entity.Item
	business *entity.Business
}

func (c *fakeCatalog) AvailableItems(ctx context.Context, businessId uuid.UUID) ([]*entity.Item, error) {
	available := make([]*entity.Item, 0, len(c.items))
	for _, item := range c.items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}

func (c *fakeCatalog) AllItems(ctx context.Context, businessId uuid.UUID) ([]*entity.Item, error) {
	return c.items, nil
}

func (c *fakeCatalog) Business(ctx context.Context, businessId uuid.UUID) (*entity.Business, error) {
	if c.business == nil {
		return nil, apperror.NotFound(apperror.CodeBusinessNotFound, "business not found")
	}
	return c.business, nil
}

func (c *fakeCatalog) InvalidateBusiness(ctx context.Context, businessId uuid.UUID) {}

type fakeAuditPublisher struct {
	messages []dto.AuditMessage
}

func (p *fakeAuditPublisher) Publish(ctx context.Context, payload []byte) error {
	return nil
}

func (p *fakeAuditPublisher) PublishAudit(ctx context.Context, msg dto.AuditMessage) {
	p.messages = append(p.messages, msg)
}
