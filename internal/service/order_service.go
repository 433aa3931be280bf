package service

import (
	"context"
	"fmt"
	"time"

	"ai-ordering-be/internal/constant"
	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"
	"ai-ordering-be/internal/pkg/mailer"
	"ai-ordering-be/internal/repository/specification"
	"ai-ordering-be/internal/repository/unitofwork"
	"ai-ordering-be/pkg/events"
	pktNats "ai-ordering-be/pkg/nats"
	"ai-ordering-be/pkg/ordering/cancel"
	"ai-ordering-be/pkg/ordering/guard"

	"github.com/google/uuid"
)

// OrderBroadcaster pushes live order events to connected merchant
// dashboards. The websocket hub implements it; a nil broadcaster is fine.
type OrderBroadcaster interface {
	BroadcastOrder(businessId uuid.UUID, event string, order *dto.OrderDTO)
}

type IOrderService interface {
	Confirm(ctx context.Context, session *entity.Session) (*dto.OrderDTO, error)
	CancelableOrders(ctx context.Context, businessId uuid.UUID, customerId string) ([]dto.OrderDTO, error)
	Cancel(ctx context.Context, businessId uuid.UUID, customerId string, orderId uuid.UUID) (*dto.CancelOrderData, error)

	// Merchant console.
	List(ctx context.Context, businessId uuid.UUID, status string) ([]dto.OrderDTO, error)
	History(ctx context.Context, businessId, orderId uuid.UUID) ([]dto.OrderStatusHistoryDTO, error)
	SetStatus(ctx context.Context, businessId, orderId uuid.UUID, status string) (*dto.OrderDTO, error)
}

type orderService struct {
	uowFactory       unitofwork.RepositoryFactory
	catalogService   ICatalogService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	emailService     mailer.IEmailService
	broadcaster      OrderBroadcaster
	now              func() time.Time
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	catalogService ICatalogService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	broadcaster OrderBroadcaster,
) IOrderService {
	return &orderService{
		uowFactory:       uowFactory,
		catalogService:   catalogService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		emailService:     emailService,
		broadcaster:      broadcaster,
		now:              time.Now,
	}
}

// Confirm runs the precondition gauntlet and, on success, snapshots the
// draft into an accepted order, appends the first status-history row and
// clears the draft, all in one transaction. A cleared draft makes a repeated
// confirm a Conflict instead of a duplicate order.
func (s *orderService) Confirm(ctx context.Context, session *entity.Session) (*dto.OrderDTO, error) {
	items, err := s.catalogService.AllItems(ctx, session.BusinessId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.TransientStore(err)
	}
	defer uow.Rollback()

	// Re-read under a row lock. A concurrent confirm that already committed
	// has cleared the draft by the time the lock is granted, so the guard
	// turns this request into a Conflict instead of a duplicate order.
	fresh, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: session.Id},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}
	if fresh == nil {
		return nil, apperror.NotFound(apperror.CodeSessionNotFound, "session not found")
	}

	draft := fresh.Draft.Order
	if err := guard.Evaluate(draft, ItemsById(items)); err != nil {
		return nil, err
	}

	now := s.now()
	lines := make([]entity.OrderLine, 0, len(draft.Cart))
	for _, line := range draft.Cart {
		lines = append(lines, entity.OrderLine{
			ItemId:    line.ItemId,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	order := &entity.Order{
		Id:           uuid.New(),
		BusinessId:   fresh.BusinessId,
		CustomerId:   fresh.CustomerId,
		SessionId:    auditSessionId(fresh.Id),
		Lines:        lines,
		Subtotal:     draft.Subtotal(),
		DeliveryFee:  draft.DeliveryFee,
		Total:        draft.Total(),
		DeliveryType: draft.DeliveryType,
		Address:      draft.Address,
		Geo:          draft.Geo,
		ScheduledFor: draft.ScheduledFor,
		Notes:        draft.Notes,
		Status:       constant.OrderStatusAccepted,
		CreatedAt:    now,
	}

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, apperror.TransientStore(err)
	}
	if err := uow.OrderRepository().AppendStatusHistory(ctx, &entity.OrderStatusHistory{
		Id:        uuid.New(),
		OrderId:   order.Id,
		Status:    constant.OrderStatusAccepted,
		ChangedBy: constant.ActorCustomer,
		ChangedAt: now,
	}); err != nil {
		return nil, apperror.TransientStore(err)
	}

	fresh.Draft = entity.DraftPayload{}
	fresh.Step = constant.StepStart
	fresh.UpdatedAt = &now
	if err := uow.SessionRepository().Update(ctx, fresh); err != nil {
		return nil, apperror.TransientStore(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.TransientStore(err)
	}

	// Mirror the committed state onto the caller's copy.
	session.Draft = fresh.Draft
	session.Step = fresh.Step
	session.UpdatedAt = fresh.UpdatedAt

	s.publisherService.PublishAudit(ctx, dto.AuditMessage{
		BusinessId: order.BusinessId,
		SessionId:  order.SessionId,
		Action:     constant.AuditOrderConfirmed,
		Payload: map[string]interface{}{
			"order_id": order.Id.String(),
			"total":    order.Total,
		},
	})

	res := newOrderDTO(order)
	s.notify(ctx, events.TypeOrderConfirmed, order, &res)
	return &res, nil
}

// CancelableOrders lists the customer's accepted orders still scheduled in
// the future, the only ones the cancellation policy applies to.
func (s *orderService) CancelableOrders(ctx context.Context, businessId uuid.UUID, customerId string) ([]dto.OrderDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.ByBusinessID{BusinessID: businessId},
		specification.ByCustomer{CustomerID: customerId},
		specification.ByStatus{Status: constant.OrderStatusAccepted},
		specification.ScheduledAfter{Instant: s.now()},
		specification.OrderBy{Field: "scheduled_for"},
	)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}

	res := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		res = append(res, newOrderDTO(order))
	}
	return res, nil
}

// Cancel withdraws one accepted order if its cancellation window has not
// closed. The deadline comes from the items, then the business default,
// then the hard fallback.
func (s *orderService) Cancel(ctx context.Context, businessId uuid.UUID, customerId string, orderId uuid.UUID) (*dto.CancelOrderData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: orderId},
		specification.ByBusinessID{BusinessID: businessId},
		specification.ByCustomer{CustomerID: customerId},
		specification.ByStatus{Status: constant.OrderStatusAccepted},
	)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}
	if order == nil {
		return nil, apperror.NotFound(apperror.CodeOrderNotFound, "I couldn't find that order")
	}
	if order.ScheduledFor == nil {
		return nil, apperror.PolicyDenied(apperror.CodeCancellationWindowExpired,
			"this order is already being prepared and can no longer be cancelled")
	}

	items, err := s.catalogService.AllItems(ctx, businessId)
	if err != nil {
		return nil, err
	}
	business, err := s.catalogService.Business(ctx, businessId)
	if err != nil {
		return nil, err
	}

	now := s.now()
	deadline := cancel.DeadlineHours(order.Lines, ItemsById(items), business)
	if err := cancel.Check(now, *order.ScheduledFor, deadline); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.TransientStore(err)
	}
	defer uow.Rollback()

	order.Status = constant.OrderStatusRejected
	order.UpdatedAt = &now
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return nil, apperror.TransientStore(err)
	}
	if err := uow.OrderRepository().AppendStatusHistory(ctx, &entity.OrderStatusHistory{
		Id:        uuid.New(),
		OrderId:   order.Id,
		Status:    constant.OrderStatusRejected,
		ChangedBy: constant.ActorCustomer,
		ChangedAt: now,
	}); err != nil {
		return nil, apperror.TransientStore(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.TransientStore(err)
	}

	s.publisherService.PublishAudit(ctx, dto.AuditMessage{
		BusinessId: order.BusinessId,
		SessionId:  order.SessionId,
		Action:     constant.AuditOrderCancelled,
		Payload: map[string]interface{}{
			"order_id": order.Id.String(),
		},
	})

	res := newOrderDTO(order)
	s.notify(ctx, events.TypeOrderCancelled, order, &res)

	return &dto.CancelOrderData{
		OrderId:      order.Id,
		Status:       order.Status,
		ScheduledFor: order.ScheduledFor,
	}, nil
}

func (s *orderService) List(ctx context.Context, businessId uuid.UUID, status string) ([]dto.OrderDTO, error) {
	specs := []specification.Specification{
		specification.ByBusinessID{BusinessID: businessId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	orders, err := uow.OrderRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}

	res := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		res = append(res, newOrderDTO(order))
	}
	return res, nil
}

func (s *orderService) History(ctx context.Context, businessId, orderId uuid.UUID) ([]dto.OrderStatusHistoryDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: orderId},
		specification.ByBusinessID{BusinessID: businessId},
	)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}
	if order == nil {
		return nil, apperror.NotFound(apperror.CodeOrderNotFound, "order not found")
	}

	history, err := uow.OrderRepository().FindStatusHistory(ctx, order.Id)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}

	res := make([]dto.OrderStatusHistoryDTO, 0, len(history))
	for _, h := range history {
		res = append(res, dto.OrderStatusHistoryDTO{
			Status:    h.Status,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		})
	}
	return res, nil
}

// SetStatus is the merchant-side transition (mark done, reject). It shares
// the append-only history discipline with the customer paths.
func (s *orderService) SetStatus(ctx context.Context, businessId, orderId uuid.UUID, status string) (*dto.OrderDTO, error) {
	if status != constant.OrderStatusRejected && status != constant.OrderStatusDone {
		return nil, apperror.Validation(apperror.CodeItemInvalid,
			fmt.Sprintf("unknown order status: %s", status))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: orderId},
		specification.ByBusinessID{BusinessID: businessId},
	)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}
	if order == nil {
		return nil, apperror.NotFound(apperror.CodeOrderNotFound, "order not found")
	}

	now := s.now()
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.TransientStore(err)
	}
	defer uow.Rollback()

	order.Status = status
	order.UpdatedAt = &now
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return nil, apperror.TransientStore(err)
	}
	if err := uow.OrderRepository().AppendStatusHistory(ctx, &entity.OrderStatusHistory{
		Id:        uuid.New(),
		OrderId:   order.Id,
		Status:    status,
		ChangedBy: constant.ActorBusiness,
		ChangedAt: now,
	}); err != nil {
		return nil, apperror.TransientStore(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.TransientStore(err)
	}

	res := newOrderDTO(order)
	return &res, nil
}

// notify fans an order event out to NATS, email and the live dashboard
// feed. All three are best-effort; the order is already committed.
func (s *orderService) notify(ctx context.Context, eventType string, order *entity.Order, res *dto.OrderDTO) {
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"order_id":    order.Id,
				"business_id": order.BusinessId,
				"customer_id": order.CustomerId,
				"total":       order.Total,
			},
			OccurredAt: s.now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
		}
	}

	if s.emailService != nil {
		if business, err := s.catalogService.Business(ctx, order.BusinessId); err == nil && business.NotificationEmail != "" {
			var mailErr error
			if eventType == events.TypeOrderCancelled {
				mailErr = s.emailService.SendOrderCancelled(business.NotificationEmail, order)
			} else {
				mailErr = s.emailService.SendOrderConfirmed(business.NotificationEmail, order)
			}
			if mailErr != nil {
				fmt.Printf("[WARN] Failed to email business about %s: %v\n", eventType, mailErr)
			}
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastOrder(order.BusinessId, eventType, res)
	}
}

func newOrderDTO(order *entity.Order) dto.OrderDTO {
	lines := make([]dto.OrderLineDTO, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, dto.OrderLineDTO{
			ItemId:    line.ItemId,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	res := dto.OrderDTO{
		Id:           order.Id,
		BusinessId:   order.BusinessId,
		CustomerId:   order.CustomerId,
		Lines:        lines,
		Subtotal:     order.Subtotal,
		DeliveryFee:  order.DeliveryFee,
		Total:        order.Total,
		DeliveryType: order.DeliveryType,
		Address:      order.Address,
		ScheduledFor: order.ScheduledFor,
		Notes:        order.Notes,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
	if order.Geo != nil {
		res.Geo = &dto.GeoDTO{
			Latitude:  order.Geo.Latitude,
			Longitude: order.Geo.Longitude,
			Label:     order.Geo.Label,
		}
	}
	return res
}
