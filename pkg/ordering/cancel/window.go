package cancel

import (
	"fmt"
	"time"

	"ai-ordering-be/internal/constant"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

// DeadlineHours resolves the effective cancellation window for an order:
// the largest item-level cancelable_before_hours across its lines, falling
// back to the business default, then to the 2-hour hard fallback.
func DeadlineHours(lines []entity.OrderLine, itemsById map[uuid.UUID]*entity.Item, business *entity.Business) float64 {
	var itemDeadline *float64
	for _, line := range lines {
		item, ok := itemsById[line.ItemId]
		if !ok || item.CancelableBeforeHours == nil {
			continue
		}
		if itemDeadline == nil || *item.CancelableBeforeHours > *itemDeadline {
			itemDeadline = item.CancelableBeforeHours
		}
	}
	if itemDeadline != nil {
		return *itemDeadline
	}
	if business != nil && business.DefaultCancelableBeforeHours != nil {
		return *business.DefaultCancelableBeforeHours
	}
	return constant.DefaultCancelableBeforeHours
}

// HoursUntil is the signed distance from now to the scheduled instant.
func HoursUntil(now, scheduledFor time.Time) float64 {
	return scheduledFor.Sub(now).Hours()
}

// Check returns a PolicyDenied error when the order can no longer be
// withdrawn, nil when cancellation is still permitted.
func Check(now, scheduledFor time.Time, deadlineHours float64) error {
	hoursUntil := HoursUntil(now, scheduledFor)
	if hoursUntil < deadlineHours {
		return apperror.PolicyDenied(
			apperror.CodeCancellationWindowExpired,
			fmt.Sprintf("orders can only be cancelled up to %g hours before the scheduled time", deadlineHours),
		).WithDetails(map[string]interface{}{
			"deadline_hours": deadlineHours,
			"hours_until":    hoursUntil,
		})
	}
	return nil
}
