package schedule

import (
	"testing"
	"time"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func weekdayHours() []entity.OpeningHour {
	hours := make([]entity.OpeningHour, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		hours = append(hours, entity.OpeningHour{
			Weekday: d,
			Closed:  d == time.Monday,
			Open:    "09:00",
			Close:   "22:00",
		})
	}
	return hours
}

func TestWithinOpeningHours(t *testing.T) {
	hours := weekdayHours()
	// 2026-09-01 is a Tuesday.
	tuesday := func(hh, mm int) time.Time {
		return time.Date(2026, 9, 1, hh, mm, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"inside window", tuesday(12, 30), true},
		{"at opening minute", tuesday(9, 0), true},
		{"at closing minute", tuesday(22, 0), false},
		{"before opening", tuesday(8, 59), false},
		{"closed day", time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), false}, // Monday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinOpeningHours(tt.instant, hours)
			if got != tt.want {
				t.Errorf("WithinOpeningHours(%v) = %v, want %v", tt.instant, got, tt.want)
			}
		})
	}

	t.Run("empty table is always open", func(t *testing.T) {
		assert.True(t, WithinOpeningHours(tuesday(3, 0), nil))
	})
}

func TestValidateLeadTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	v := NewValidatorAt(func() time.Time { return now })
	business := &entity.Business{
		Name:         "Testaurant",
		Timezone:     "UTC",
		OpeningHours: weekdayHours(),
	}

	t.Run("too short fails with required hours", func(t *testing.T) {
		err := v.Validate(now.Add(1*time.Hour), business, 3)
		assert.Error(t, err)
		appErr := apperror.From(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, apperror.CodeLeadTimeTooShort, appErr.Code)
		assert.Equal(t, float64(3), appErr.Details["required_hours"])
	})

	t.Run("far enough succeeds", func(t *testing.T) {
		err := v.Validate(now.Add(4*time.Hour), business, 3)
		assert.NoError(t, err)
	})

	t.Run("no schedulable lines skips lead check", func(t *testing.T) {
		err := v.Validate(now.Add(1*time.Hour), business, 0)
		assert.NoError(t, err)
	})

	t.Run("opening hours checked before lead time", func(t *testing.T) {
		// 23:00 is after close regardless of the lead-time shortfall.
		err := v.Validate(time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC), business, 3)
		appErr := apperror.From(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, apperror.CodeOutsideOpeningHours, appErr.Code)
	})
}

func TestRequiredLeadHours(t *testing.T) {
	cakeId, pizzaId := uuid.New(), uuid.New()
	items := map[uuid.UUID]*entity.Item{
		cakeId:  {Id: cakeId, IsSchedulable: true, MinScheduleHours: 24},
		pizzaId: {Id: pizzaId, IsSchedulable: false, MinScheduleHours: 0},
	}

	lines := []entity.CartLine{
		{ItemId: pizzaId, Quantity: 2},
		{ItemId: cakeId, Quantity: 1},
	}
	assert.Equal(t, float64(24), RequiredLeadHours(lines, items))

	// Removing the schedulable line drops the requirement to zero.
	assert.Equal(t, float64(0), RequiredLeadHours(lines[:1], items))
}
