package guard

import (
	"testing"
	"time"

	"ai-ordering-be/internal/constant"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	pizzaId, cakeId := uuid.New(), uuid.New()
	items := map[uuid.UUID]*entity.Item{
		pizzaId: {Id: pizzaId, Name: "Margherita"},
		cakeId:  {Id: cakeId, Name: "Wedding Cake", IsSchedulable: true, MinScheduleHours: 24},
	}
	future := time.Now().Add(48 * time.Hour)

	baseCart := []entity.CartLine{{ItemId: pizzaId, Name: "Margherita", UnitPrice: 9.5, Quantity: 2}}

	tests := []struct {
		name     string
		draft    *entity.OrderDraft
		wantCode string
	}{
		{
			name:     "nil draft",
			draft:    nil,
			wantCode: apperror.CodeNothingToConfirm,
		},
		{
			name:     "empty cart",
			draft:    &entity.OrderDraft{},
			wantCode: apperror.CodeNothingToConfirm,
		},
		{
			name:     "missing delivery type",
			draft:    &entity.OrderDraft{Cart: baseCart},
			wantCode: apperror.CodeMissingField,
		},
		{
			name: "delivery without address",
			draft: &entity.OrderDraft{
				Cart:         baseCart,
				DeliveryType: constant.DeliveryTypeDelivery,
			},
			wantCode: apperror.CodeMissingField,
		},
		{
			name: "unscheduled schedulable item",
			draft: &entity.OrderDraft{
				Cart: []entity.CartLine{
					{ItemId: cakeId, Name: "Wedding Cake", Quantity: 1},
				},
				DeliveryType: constant.DeliveryTypeTakeaway,
			},
			wantCode: apperror.CodeSchedulingRequired,
		},
		{
			name: "takeaway without address is fine",
			draft: &entity.OrderDraft{
				Cart:         baseCart,
				DeliveryType: constant.DeliveryTypeTakeaway,
			},
			wantCode: "",
		},
		{
			name: "delivery with gps but no text address",
			draft: &entity.OrderDraft{
				Cart:         baseCart,
				DeliveryType: constant.DeliveryTypeDelivery,
				Geo:          &entity.GeoPoint{Latitude: -6.2, Longitude: 106.8},
			},
			wantCode: "",
		},
		{
			name: "schedulable item with schedule set",
			draft: &entity.OrderDraft{
				Cart: []entity.CartLine{
					{ItemId: cakeId, Name: "Wedding Cake", Quantity: 1},
				},
				DeliveryType: constant.DeliveryTypeTakeaway,
				ScheduledFor: &future,
			},
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Evaluate(tt.draft, items)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			appErr := apperror.From(err)
			assert.NotNil(t, appErr, "expected an application error")
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestEvaluateNamesOffendingItems(t *testing.T) {
	cakeId := uuid.New()
	items := map[uuid.UUID]*entity.Item{
		cakeId: {Id: cakeId, Name: "Wedding Cake", IsSchedulable: true},
	}
	draft := &entity.OrderDraft{
		Cart:         []entity.CartLine{{ItemId: cakeId, Name: "Wedding Cake", Quantity: 1}},
		DeliveryType: constant.DeliveryTypeTakeaway,
	}

	appErr := apperror.From(Evaluate(draft, items))
	assert.NotNil(t, appErr)
	assert.Equal(t, []string{"Wedding Cake"}, appErr.Details["items"])
}
