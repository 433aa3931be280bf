package service

import (
	"context"
	"testing"

	"ai-ordering-be/internal/constant"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"
	"ai-ordering-be/pkg/ordering/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newCartFixture(items ...*entity.Item) (*fakeFactory, *fakeAuditPublisher, ICartService) {
	factory := newFakeFactory()
	publisher := &fakeAuditPublisher{}
	catalog := &fakeCatalog{items: items}
	svc := NewCartService(factory, catalog, publisher, schedule.NewRFC3339Parser())
	return factory, publisher, svc
}

func newDraftSession() *entity.Session {
	return &entity.Session{
		Id:         uuid.New(),
		BusinessId: uuid.New(),
		CustomerId: "+628111111111",
		Channel:    "whatsapp",
		Mode:       constant.ModeDelivery,
		Step:       constant.StepStart,
	}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Nasi Goreng", Price: 25000, Available: true}
	factory, publisher, svc := newCartFixture(item)
	session := newDraftSession()

	first, err := svc.AddItem(context.Background(), session, "nasi goreng", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.AddItem(context.Background(), session, "Nasi", 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, second.Quantity)

	assert.Len(t, session.Draft.Order.Cart, 1)
	assert.Equal(t, 3, session.Draft.Order.Cart[0].Quantity)
	assert.Equal(t, 2, factory.uow.sessionRepo.updates)
	assert.Len(t, publisher.messages, 2)
	assert.Equal(t, constant.AuditDraftMutated, publisher.messages[0].Action)
}

func TestAddItemUnknownName(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Nasi Goreng", Price: 25000, Available: true}
	factory, _, svc := newCartFixture(item)
	session := newDraftSession()

	_, err := svc.AddItem(context.Background(), session, "pizza", 1)

	appErr := apperror.From(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, apperror.CodeItemNotFound, appErr.Code)
	assert.Zero(t, factory.uow.sessionRepo.updates)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Es Teh", Price: 5000, Available: true}
	_, _, svc := newCartFixture(item)
	session := newDraftSession()

	res, err := svc.AddItem(context.Background(), session, "es teh", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Quantity)
}

func TestAddItemSkipsUnavailableItems(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Soto Ayam", Price: 20000, Available: false}
	_, _, svc := newCartFixture(item)
	session := newDraftSession()

	_, err := svc.AddItem(context.Background(), session, "soto ayam", 1)

	appErr := apperror.From(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeItemNotFound, appErr.Code)
}

func TestUpdateQuantityDegradesToRemoval(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Nasi Goreng", Price: 25000, Available: true}

	for _, quantity := range []int{0, -3} {
		factory, publisher, svc := newCartFixture(item)
		session := newDraftSession()
		session.Draft.EnsureOrder().Cart = []entity.CartLine{
			{ItemId: item.Id, Name: item.Name, UnitPrice: item.Price, Quantity: 2},
		}

		summary, err := svc.UpdateQuantity(context.Background(), session, "nasi goreng", quantity)
		assert.NoError(t, err)
		assert.Empty(t, summary.Lines)
		assert.Empty(t, session.Draft.Order.Cart)
		assert.Equal(t, 1, factory.uow.sessionRepo.updates)
		// Removal is what actually happened, so that is what the trail says.
		assert.Equal(t, "remove_item", publisher.messages[0].Payload["op"])
	}
}

func TestUpdateQuantitySetsNewValue(t *testing.T) {
	item := &entity.Item{Id: uuid.New(), Name: "Nasi Goreng", Price: 25000, Available: true}
	_, _, svc := newCartFixture(item)
	session := newDraftSession()
	session.Draft.EnsureOrder().Cart = []entity.CartLine{
		{ItemId: item.Id, Name: item.Name, UnitPrice: item.Price, Quantity: 2},
	}

	summary, err := svc.UpdateQuantity(context.Background(), session, "nasi goreng", 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, summary.Lines[0].Quantity)
	assert.Equal(t, 5, session.Draft.Order.Cart[0].Quantity)
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	_, _, svc := newCartFixture()
	session := newDraftSession()

	_, err := svc.UpdateQuantity(context.Background(), session, "pizza", 2)

	appErr := apperror.From(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeLineNotFound, appErr.Code)
}
