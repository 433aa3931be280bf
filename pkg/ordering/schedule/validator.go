package schedule

import (
	"fmt"
	"time"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

// Validator reconciles a parsed candidate instant against the business's
// weekly opening hours and the lead time demanded by the draft's items.
type Validator struct {
	now func() time.Time
}

func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorAt pins the clock, for tests.
func NewValidatorAt(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Validate checks, in order: (1) the instant falls inside an open interval
// of the weekly table, (2) the instant honors requiredLeadHours when the
// draft carries schedulable items. Only a nil return may be followed by
// writing the instant into the draft.
func (v *Validator) Validate(instant time.Time, business *entity.Business, requiredLeadHours float64) error {
	loc := v.location(business)
	local := instant.In(loc)

	if !WithinOpeningHours(local, business.OpeningHours) {
		return apperror.PolicyDenied(
			apperror.CodeOutsideOpeningHours,
			fmt.Sprintf("%s is closed at the requested time", business.Name),
		)
	}

	if requiredLeadHours > 0 {
		earliest := v.now().Add(time.Duration(requiredLeadHours * float64(time.Hour)))
		if instant.Before(earliest) {
			return apperror.PolicyDenied(
				apperror.CodeLeadTimeTooShort,
				fmt.Sprintf("this order must be scheduled at least %g hours in advance", requiredLeadHours),
			).WithDetails(map[string]interface{}{
				"required_hours": requiredLeadHours,
			})
		}
	}

	return nil
}

func (v *Validator) location(business *entity.Business) *time.Location {
	if business.Timezone != "" {
		if loc, err := time.LoadLocation(business.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// WithinOpeningHours reports whether the local instant falls inside the
// open interval of its weekday. An empty table means always open; a missing
// weekday row means closed that day.
func WithinOpeningHours(local time.Time, hours []entity.OpeningHour) bool {
	if len(hours) == 0 {
		return true
	}
	for _, h := range hours {
		if h.Weekday != local.Weekday() {
			continue
		}
		if h.Closed {
			return false
		}
		open, okOpen := minutesOfDay(h.Open)
		close, okClose := minutesOfDay(h.Close)
		if !okOpen || !okClose {
			return false
		}
		minutes := local.Hour()*60 + local.Minute()
		return minutes >= open && minutes < close
	}
	return false
}

// minutesOfDay parses "HH:MM" into minutes since midnight.
func minutesOfDay(s string) (int, bool) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
		return 0, false
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

// RequiredLeadHours derives the effective lead time for a draft: the maximum
// min_schedule_hours across its schedulable lines, 0 when none are
// schedulable.
func RequiredLeadHours(lines []entity.CartLine, itemsById map[uuid.UUID]*entity.Item) float64 {
	var max float64
	for _, line := range lines {
		item, ok := itemsById[line.ItemId]
		if !ok || !item.IsSchedulable {
			continue
		}
		if item.MinScheduleHours > max {
			max = item.MinScheduleHours
		}
	}
	return max
}
