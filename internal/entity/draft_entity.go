package entity

import (
	"time"

	"ai-ordering-be/internal/constant"

	"github.com/google/uuid"
)

// GeoPoint is a GPS coordinate with an optional human label.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label,omitempty"`
}

// CartLine is one item line in an order draft. Quantity is always >= 1;
// removing the last unit removes the line.
type CartLine struct {
	ItemId    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

// OrderDraft is the in-progress, uncommitted order attached to a session in
// an order-bearing mode.
type OrderDraft struct {
	Cart         []CartLine `json:"cart,omitempty"`
	DeliveryType string     `json:"delivery_type,omitempty"`
	Address      string     `json:"address,omitempty"`
	Geo          *GeoPoint  `json:"geo,omitempty"`
	DeliveryFee  float64    `json:"delivery_fee,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// SupportDraft is the scratch data for support mode.
type SupportDraft struct {
	Topic string `json:"topic,omitempty"`
}

// DraftPayload is the mode-scoped scratch data of a session, a tagged union
// keyed by mode. At most one variant is set; both nil means an empty draft.
// It is parsed from / serialized to JSONB at the store boundary.
type DraftPayload struct {
	Order   *OrderDraft   `json:"order,omitempty"`
	Support *SupportDraft `json:"support,omitempty"`
}

// Empty reports whether the payload carries no data at all.
func (p DraftPayload) Empty() bool {
	return p.Order == nil && p.Support == nil
}

// FilterForMode computes the payload that survives a switch into newMode:
// support keeps nothing, order modes keep only the cart lines. Everything
// else (address, schedule, notes, delivery type) is dropped.
func (p DraftPayload) FilterForMode(newMode string) DraftPayload {
	if !constant.IsOrderMode(newMode) {
		return DraftPayload{}
	}
	if p.Order == nil || len(p.Order.Cart) == 0 {
		return DraftPayload{}
	}
	cart := make([]CartLine, len(p.Order.Cart))
	copy(cart, p.Order.Cart)
	return DraftPayload{Order: &OrderDraft{Cart: cart}}
}

// EnsureOrder returns the order draft, allocating it lazily.
func (p *DraftPayload) EnsureOrder() *OrderDraft {
	if p.Order == nil {
		p.Order = &OrderDraft{}
	}
	return p.Order
}

// Subtotal is the sum of line prices, excluding the delivery fee.
func (d *OrderDraft) Subtotal() float64 {
	var total float64
	for _, line := range d.Cart {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// Total includes the delivery fee.
func (d *OrderDraft) Total() float64 {
	return d.Subtotal() + d.DeliveryFee
}

// HasAddress reports whether any delivery destination is present, either as
// text or as a GPS point.
func (d *OrderDraft) HasAddress() bool {
	return d.Address != "" || d.Geo != nil
}
