package service

import (
	"errors"
	"testing"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToResultBusinessError(t *testing.T) {
	err := apperror.NotFound(apperror.CodeItemNotFound, "no such item").
		WithDetails(map[string]interface{}{"query": "pizza"})

	res, outErr := toResult(err)
	assert.NoError(t, outErr)
	if assert.NotNil(t, res) {
		assert.False(t, res.Success)
		assert.Equal(t, apperror.CodeItemNotFound, res.Error)
		assert.Equal(t, "no such item", res.Message)
	}
}

func TestToResultTransientStorePropagates(t *testing.T) {
	err := apperror.TransientStore(errors.New("connection refused"))

	res, outErr := toResult(err)
	assert.Nil(t, res)
	assert.Error(t, outErr)
}

func TestToResultUnclassifiedPropagates(t *testing.T) {
	err := errors.New("boom")

	res, outErr := toResult(err)
	assert.Nil(t, res)
	assert.Equal(t, err, outErr)
}

func TestItemsById(t *testing.T) {
	a := &entity.Item{Id: uuid.New(), Name: "A"}
	b := &entity.Item{Id: uuid.New(), Name: "B"}

	byId := ItemsById([]*entity.Item{a, b})
	assert.Len(t, byId, 2)
	assert.Same(t, a, byId[a.Id])
	assert.Same(t, b, byId[b.Id])
}

func TestNewSessionDTO(t *testing.T) {
	employeeId := uuid.New()
	session := &entity.Session{
		Id:                 uuid.New(),
		BusinessId:         uuid.New(),
		CustomerId:         "628123",
		Channel:            "whatsapp",
		Mode:               "delivery",
		Step:               "start",
		Locked:             true,
		AssignedEmployeeId: &employeeId,
	}

	d := newSessionDTO(session)
	assert.Equal(t, session.Id, d.Id)
	assert.Equal(t, "delivery", d.Mode)
	assert.True(t, d.Locked)
	assert.Equal(t, &employeeId, d.AssignedEmployeeId)
}

func TestNewOrderDTOCopiesLinesAndGeo(t *testing.T) {
	order := &entity.Order{
		Id:         uuid.New(),
		BusinessId: uuid.New(),
		CustomerId: "628123",
		Lines: []entity.OrderLine{
			{ItemId: uuid.New(), Name: "Nasi Goreng", UnitPrice: 25000, Quantity: 2},
		},
		Subtotal:     50000,
		DeliveryFee:  10000,
		Total:        60000,
		DeliveryType: "delivery",
		Geo:          &entity.GeoPoint{Latitude: -6.2, Longitude: 106.8, Label: "home"},
		Status:       "accepted",
	}

	d := newOrderDTO(order)
	assert.Len(t, d.Lines, 1)
	assert.Equal(t, "Nasi Goreng", d.Lines[0].Name)
	assert.Equal(t, 60000.0, d.Total)
	if assert.NotNil(t, d.Geo) {
		assert.Equal(t, -6.2, d.Geo.Latitude)
		assert.Equal(t, "home", d.Geo.Label)
	}
}
