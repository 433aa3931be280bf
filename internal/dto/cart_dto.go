package dto

import (
	"time"

	"ai-ordering-be/internal/entity"

	"github.com/google/uuid"
)

type DraftLineDTO struct {
	ItemId    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal float64   `json:"line_total"`
}

// DraftSummary is the customer-facing view of the in-progress order.
type DraftSummary struct {
	Lines        []DraftLineDTO `json:"lines"`
	DeliveryType string         `json:"delivery_type,omitempty"`
	Address      string         `json:"address,omitempty"`
	Geo          *GeoDTO        `json:"geo,omitempty"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	Subtotal     float64        `json:"subtotal"`
	DeliveryFee  float64        `json:"delivery_fee"`
	Total        float64        `json:"total"`
}

type GeoDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label,omitempty"`
}

// AddItemData accompanies a successful add_item result. RequiresScheduling
// tells the workflow it must still collect a time before confirmation.
type AddItemData struct {
	ItemId             uuid.UUID `json:"item_id"`
	Name               string    `json:"name"`
	Quantity           int       `json:"quantity"`
	RequiresScheduling bool      `json:"requires_scheduling"`
	MinScheduleHours   float64   `json:"min_schedule_hours,omitempty"`
}

// NewDraftSummary flattens a draft into the response shape.
func NewDraftSummary(draft *entity.OrderDraft) *DraftSummary {
	s := &DraftSummary{Lines: []DraftLineDTO{}}
	if draft == nil {
		return s
	}
	for _, line := range draft.Cart {
		s.Lines = append(s.Lines, DraftLineDTO{
			ItemId:    line.ItemId,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.UnitPrice * float64(line.Quantity),
		})
	}
	s.DeliveryType = draft.DeliveryType
	s.Address = draft.Address
	if draft.Geo != nil {
		s.Geo = &GeoDTO{
			Latitude:  draft.Geo.Latitude,
			Longitude: draft.Geo.Longitude,
			Label:     draft.Geo.Label,
		}
	}
	s.ScheduledFor = draft.ScheduledFor
	s.Notes = draft.Notes
	s.Subtotal = draft.Subtotal()
	s.DeliveryFee = draft.DeliveryFee
	s.Total = draft.Total()
	return s
}
