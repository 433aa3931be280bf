package service

import (
	"context"
	"testing"

	"ai-ordering-be/internal/constant"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newOrderFixture(items ...*entity.Item) (*fakeFactory, *fakeAuditPublisher, IOrderService) {
	factory := newFakeFactory()
	publisher := &fakeAuditPublisher{}
	catalog := &fakeCatalog{items: items}
	svc := NewOrderService(factory, catalog, publisher, nil, nil, nil)
	return factory, publisher, svc
}

func newConfirmableSession(item *entity.Item) *entity.Session {
	session := newDraftSession()
	session.Draft.Order = &entity.OrderDraft{
		Cart: []entity.CartLine{
			{ItemId: item.Id, Name: item.Name, UnitPrice: item.Price, Quantity: 2},
		},
		DeliveryType: constant.DeliveryTypeTakeaway,
	}
	return session
}

func TestConfirmCreatesOrderAndClearsDraft(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Nasi Goreng", Price: 25000, Available: true}
	factory, publisher, svc := newOrderFixture(item)
	session := newConfirmableSession(item)
	factory.uow.sessionRepo.put(session)

	res, err := svc.Confirm(context.Background(), session)
	assert.NoError(t, err)
	assert.Equal(t, constant.OrderStatusAccepted, res.Status)
	assert.Equal(t, 50000.0, res.Total)

	assert.Len(t, factory.uow.orderRepo.orders, 1)
	assert.Len(t, factory.uow.orderRepo.histories, 1)
	assert.Equal(t, constant.ActorCustomer, factory.uow.orderRepo.histories[0].ChangedBy)
	assert.Equal(t, 1, factory.uow.commits)

	stored := factory.uow.sessionRepo.sessions[session.Id]
	assert.True(t, stored.Draft.Empty())
	assert.True(t, session.Draft.Empty())
	assert.Equal(t, constant.StepStart, session.Step)

	assert.Len(t, publisher.messages, 1)
	assert.Equal(t, constant.AuditOrderConfirmed, publisher.messages[0].Action)
}

func TestConfirmTwiceProducesOneOrder(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Nasi Goreng", Price: 25000, Available: true}
	factory, _, svc := newOrderFixture(item)
	session := newConfirmableSession(item)
	factory.uow.sessionRepo.put(session)

	_, err := svc.Confirm(context.Background(), session)
	assert.NoError(t, err)

	_, err = svc.Confirm(context.Background(), session)
	appErr := apperror.From(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)
	assert.Equal(t, apperror.CodeNothingToConfirm, appErr.Code)

	assert.Len(t, factory.uow.orderRepo.orders, 1)
}

// A request racing a confirm can still hold a stale in-memory draft after
// the other request committed and cleared the stored one. Confirmation must
// decide on the stored draft, not the caller's copy.
func TestConfirmDecidesOnStoredDraft(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Nasi Goreng", Price: 25000, Available: true}
	factory, _, svc := newOrderFixture(item)

	session := newConfirmableSession(item)
	cleared := *session
	cleared.Draft = entity.DraftPayload{}
	factory.uow.sessionRepo.put(&cleared)

	_, err := svc.Confirm(context.Background(), session)

	appErr := apperror.From(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeNothingToConfirm, appErr.Code)
	assert.Empty(t, factory.uow.orderRepo.orders)
	assert.Zero(t, factory.uow.commits)
	assert.Equal(t, 1, factory.uow.rollbacks)
}

func TestConfirmUnknownSession(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Nasi Goreng", Price: 25000, Available: true}
	_, _, svc := newOrderFixture(item)
	session := newConfirmableSession(item)

	_, err := svc.Confirm(context.Background(), session)

	appErr := apperror.From(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeSessionNotFound, appErr.Code)
}

func TestConfirmRequiresDeliveryType(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Nasi Goreng", Price: 25000, Available: true}
	factory, _, svc := newOrderFixture(item)
	session := newConfirmableSession(item)
	session.Draft.Order.DeliveryType = ""
	factory.uow.sessionRepo.put(session)

	_, err := svc.Confirm(context.Background(), session)

	appErr := apperror.From(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, apperror.CodeMissingField, appErr.Code)
	assert.Empty(t, factory.uow.orderRepo.orders)
}
