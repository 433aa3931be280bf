package constant

// Conversation modes. Every session is in exactly one of these.
const (
	ModeDelivery = "delivery"
	ModeTakeaway = "takeaway"
	ModeDineIn   = "dine_in"
	ModeSupport  = "support"
)

// StepStart is the only step label this layer owns; workflow code above is
// free to write its own labels ("awaiting_address", ...).
const StepStart = "start"

// Delivery types on a draft/order.
const (
	DeliveryTypeTakeaway = "takeaway"
	DeliveryTypeDelivery = "delivery"
	DeliveryTypeOnSite   = "on_site"
)

// Order statuses.
const (
	OrderStatusAccepted = "accepted"
	OrderStatusRejected = "rejected"
	OrderStatusDone     = "done"
)

// Actors recorded in the order status history.
const (
	ActorCustomer = "customer"
	ActorBusiness = "business"
	ActorSystem   = "system"
)

// Audit action types.
const (
	AuditModeSwitched   = "mode_switched"
	AuditDraftMutated   = "draft_mutated"
	AuditOrderConfirmed = "order_confirmed"
	AuditOrderCancelled = "order_cancelled"
	AuditSessionLocked  = "session_locked"
)

// DefaultCancelableBeforeHours is the hard fallback when neither the item
// nor the business specifies a cancellation window.
const DefaultCancelableBeforeHours = 2.0

// IsOrderMode reports whether the mode carries an order draft.
func IsOrderMode(mode string) bool {
	return mode == ModeDelivery || mode == ModeTakeaway || mode == ModeDineIn
}

// IsKnownMode reports whether mode is one of the four recognized modes.
func IsKnownMode(mode string) bool {
	return IsOrderMode(mode) || mode == ModeSupport
}

// IsKnownDeliveryType reports whether t is one of the three delivery types.
func IsKnownDeliveryType(t string) bool {
	return t == DeliveryTypeTakeaway || t == DeliveryTypeDelivery || t == DeliveryTypeOnSite
}
