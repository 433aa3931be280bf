package cancel

import (
	"testing"
	"time"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func hoursPtr(h float64) *float64 { return &h }

func TestDeadlineHours(t *testing.T) {
	cakeId, pizzaId := uuid.New(), uuid.New()
	lines := []entity.OrderLine{
		{ItemId: cakeId, Name: "Cake", Quantity: 1},
		{ItemId: pizzaId, Name: "Pizza", Quantity: 2},
	}

	tests := []struct {
		name     string
		items    map[uuid.UUID]*entity.Item
		business *entity.Business
		want     float64
	}{
		{
			name: "item override wins over business default",
			items: map[uuid.UUID]*entity.Item{
				cakeId: {Id: cakeId, CancelableBeforeHours: hoursPtr(12)},
			},
			business: &entity.Business{DefaultCancelableBeforeHours: hoursPtr(4)},
			want:     12,
		},
		{
			name: "largest item override wins",
			items: map[uuid.UUID]*entity.Item{
				cakeId:  {Id: cakeId, CancelableBeforeHours: hoursPtr(12)},
				pizzaId: {Id: pizzaId, CancelableBeforeHours: hoursPtr(6)},
			},
			business: &entity.Business{},
			want:     12,
		},
		{
			name:     "business default when no item override",
			items:    map[uuid.UUID]*entity.Item{},
			business: &entity.Business{DefaultCancelableBeforeHours: hoursPtr(4)},
			want:     4,
		},
		{
			name:     "hard fallback of two hours",
			items:    map[uuid.UUID]*entity.Item{},
			business: &entity.Business{},
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeadlineHours(lines, tt.items, tt.business)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("inside window expires", func(t *testing.T) {
		// Scheduled 1.5h out against a 2h deadline.
		err := Check(now, now.Add(90*time.Minute), 2)
		appErr := apperror.From(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, apperror.CodeCancellationWindowExpired, appErr.Code)
		assert.Equal(t, float64(2), appErr.Details["deadline_hours"])
	})

	t.Run("exactly at deadline still allowed", func(t *testing.T) {
		assert.NoError(t, Check(now, now.Add(2*time.Hour), 2))
	})

	t.Run("well before deadline allowed", func(t *testing.T) {
		assert.NoError(t, Check(now, now.Add(48*time.Hour), 2))
	})
}
