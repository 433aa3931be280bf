package guard

import (
	"fmt"
	"strings"

	"ai-ordering-be/internal/constant"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

// Evaluate runs the confirmation preconditions in order and returns the
// first failure, or nil when the draft may be committed:
//  1. at least one line
//  2. delivery type set
//  3. address present when the type is delivery
//  4. every schedulable line scheduled
//
// The caller commits only on nil; a non-nil result carries the exact
// missing field so the workflow can prompt for it.
func Evaluate(draft *entity.OrderDraft, itemsById map[uuid.UUID]*entity.Item) error {
	if draft == nil || len(draft.Cart) == 0 {
		return apperror.Conflict(apperror.CodeNothingToConfirm, "Cart is empty.")
	}

	if draft.DeliveryType == "" {
		return apperror.Validation(apperror.CodeMissingField, "please choose delivery, takeaway or on-site first").
			WithDetails(map[string]interface{}{"field": "delivery_type"})
	}

	if draft.DeliveryType == constant.DeliveryTypeDelivery && !draft.HasAddress() {
		return apperror.Validation(apperror.CodeMissingField, "please provide your delivery address").
			WithDetails(map[string]interface{}{"field": "address"})
	}

	if draft.ScheduledFor == nil {
		if unscheduled := schedulableNames(draft.Cart, itemsById); len(unscheduled) > 0 {
			return apperror.PolicyDenied(
				apperror.CodeSchedulingRequired,
				fmt.Sprintf("these items must be scheduled in advance: %s", strings.Join(unscheduled, ", ")),
			).WithDetails(map[string]interface{}{"items": unscheduled})
		}
	}

	return nil
}

func schedulableNames(lines []entity.CartLine, itemsById map[uuid.UUID]*entity.Item) []string {
	var names []string
	for _, line := range lines {
		if item, ok := itemsById[line.ItemId]; ok && item.IsSchedulable {
			names = append(names, line.Name)
		}
	}
	return names
}
